package model

// PlannedSite is one entry of the ordered list of planned future build
// sites. Display carries the label used in events, Municipality the resolved
// municipality name.
type PlannedSite struct {
	Site         string `json:"site"`
	Display      string `json:"display"`
	Municipality string `json:"municipality"`
}
