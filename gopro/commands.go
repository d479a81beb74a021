package gopro

// Command groups of the HERO3 Wi-Fi API. "camera" commands address the
// camera itself, "bacpac" commands address the Wi-Fi backpack.
const (
	GroupCamera = "camera"
	GroupBacpac = "bacpac"
)

// Two-letter command codes, per the HERO3 command table.
const (
	CodePower             = "PW"
	CodeShutter           = "SH"
	CodeMode              = "CM"
	CodePreview           = "PV"
	CodeFieldOfView       = "FV"
	CodeVideoResolution   = "VR"
	CodeTimelapseInterval = "TI"
	CodeLocate            = "LL"
	CodeDeleteLast        = "DL"
	CodeDeleteAll         = "DA"
)

// Modes maps the CLI mode names to their option codes.
var Modes = map[string]string{
	"video":     "00",
	"photo":     "01",
	"burst":     "02",
	"timelapse": "03",
}

// FieldsOfView maps the CLI field-of-view names to their option codes.
var FieldsOfView = map[string]string{
	"wide":   "00",
	"medium": "01",
	"narrow": "02",
}

// VideoResolutions maps the CLI resolution names to their option
// codes.
var VideoResolutions = map[string]string{
	"wvga":  "00",
	"720p":  "01",
	"960p":  "02",
	"1080p": "03",
}

// TimelapseIntervals maps the supported on-camera timelapse intervals,
// in seconds, to their option codes.
var TimelapseIntervals = map[string]string{
	"0.5": "00",
	"1":   "01",
	"5":   "05",
	"10":  "0a",
	"30":  "1e",
	"60":  "3c",
}

func PowerOn() CommandRequest {
	return CommandRequest{Group: GroupBacpac, Code: CodePower, Option: "01", Auth: true}
}

func PowerOff() CommandRequest {
	return CommandRequest{Group: GroupBacpac, Code: CodePower, Option: "00", Auth: true}
}

func ShutterStart() CommandRequest {
	return CommandRequest{Group: GroupCamera, Code: CodeShutter, Option: "01", Auth: true}
}

func ShutterStop() CommandRequest {
	return CommandRequest{Group: GroupCamera, Code: CodeShutter, Option: "00", Auth: true}
}

func SetMode(option string) CommandRequest {
	return CommandRequest{Group: GroupCamera, Code: CodeMode, Option: option, Auth: true}
}

// PreviewStart and PreviewStop use distinct option codes. The device
// treats 02 as "preview on" and 00 as "preview off".
func PreviewStart() CommandRequest {
	return CommandRequest{Group: GroupCamera, Code: CodePreview, Option: "02", Auth: true}
}

func PreviewStop() CommandRequest {
	return CommandRequest{Group: GroupCamera, Code: CodePreview, Option: "00", Auth: true}
}

func SetFieldOfView(option string) CommandRequest {
	return CommandRequest{Group: GroupCamera, Code: CodeFieldOfView, Option: option, Auth: true}
}

func SetVideoResolution(option string) CommandRequest {
	return CommandRequest{Group: GroupCamera, Code: CodeVideoResolution, Option: option, Auth: true}
}

func SetTimelapseInterval(option string) CommandRequest {
	return CommandRequest{Group: GroupCamera, Code: CodeTimelapseInterval, Option: option, Auth: true}
}

func LocateOn() CommandRequest {
	return CommandRequest{Group: GroupCamera, Code: CodeLocate, Option: "01", Auth: true}
}

func LocateOff() CommandRequest {
	return CommandRequest{Group: GroupCamera, Code: CodeLocate, Option: "00", Auth: true}
}

func DeleteLast() CommandRequest {
	return CommandRequest{Group: GroupCamera, Code: CodeDeleteLast, Auth: true}
}

func DeleteAll() CommandRequest {
	return CommandRequest{Group: GroupCamera, Code: CodeDeleteAll, Auth: true}
}
