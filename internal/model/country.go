package model

// Country is a name/flag pair returned by the public country lookup API.
// It backs the nationality selector in the profile update flow.
type Country struct {
	Name string `json:"name"`
	Flag string `json:"flag"`
}
