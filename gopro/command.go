package gopro

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// CommandRequest describes one outbound device command. Option is a
// two-character hex string, empty when the command takes none. Auth
// marks privileged commands that must carry the session token.
type CommandRequest struct {
	Group  string
	Code   string
	Option string
	Auth   bool
}

// CommandURL constructs the request URL for req. Privileged requests
// trigger the lazy token fetch on first use; the call does not return
// until the token is cached and embedded.
func (c *Camera) CommandURL(ctx context.Context, req CommandRequest) (string, error) {
	if err := validateAddress(c.baseURL); err != nil {
		return "", err
	}

	var token string
	if req.Auth {
		t, err := c.authToken(ctx)
		if err != nil {
			return "", err
		}
		token = t
	}

	u := fmt.Sprintf("%s/%s/%s", c.baseURL, req.Group, req.Code)
	switch {
	case req.Auth && req.Option != "":
		u += fmt.Sprintf("?t=%s&p=%%%s", token, req.Option)
	case req.Auth:
		u += fmt.Sprintf("?t=%s", token)
	case req.Option != "":
		u += fmt.Sprintf("?p=%%%s", req.Option)
	}
	return u, nil
}

// Execute builds the command URL and issues it to the camera. The
// response body is discarded; the device acks commands with an empty
// 200.
func (c *Camera) Execute(ctx context.Context, req CommandRequest) error {
	logger := c.Logger.WithFields(log.Fields{
		"group":  req.Group,
		"code":   req.Code,
		"option": req.Option,
	})

	u, err := c.CommandURL(ctx, req)
	if err != nil {
		logger.WithError(err).Debug("Could not build command URL")
		if c.instr != nil {
			c.instr.CommandIssued(req.Group, req.Code, err)
		}
		return err
	}

	_, err = c.transport.Get(ctx, u)
	if c.instr != nil {
		c.instr.CommandIssued(req.Group, req.Code, err)
	}
	if err != nil {
		logger.WithError(err).Debug("Command failed")
		return err
	}

	logger.Debug("Command sent")
	return nil
}
