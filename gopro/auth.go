package gopro

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// authToken returns the session token, fetching it from the bacpac on
// first use. The token is served as a raw string padded with
// whitespace and NUL bytes that must be stripped before use.
//
// The fetch is never eager: it happens on the first privileged command
// only, and the result is cached for the rest of the session. On
// failure nothing is cached, so the next privileged command retries.
// Two concurrent first calls may both fetch; both store the same
// value.
func (c *Camera) authToken(ctx context.Context) (string, error) {
	if c.token != "" {
		return c.token, nil
	}

	body, err := c.transport.Get(ctx, c.AuthURL())
	if c.instr != nil {
		c.instr.TokenFetched(err)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	token := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == 0 {
			return -1
		}
		return r
	}, string(body))

	c.Logger.Debug("Cached session token")
	c.token = token
	return token, nil
}
