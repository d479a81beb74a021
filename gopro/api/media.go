package api

// MediaList is the payload served by the camera's gpMediaList
// endpoint.
type MediaList struct {
	Media []MediaNode `json:"media"`
}

// MediaNode is the raw wire shape of one entry in the media tree. A
// directory carries its name in "d" and its children in "fs"; a file
// carries its name in "n". Pointers preserve field presence so the
// decoder can tell an absent field from an empty one.
type MediaNode struct {
	Dir   *string      `json:"d"`
	Files *[]MediaNode `json:"fs"`
	Name  *string      `json:"n"`
}
