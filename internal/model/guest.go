package model

// Guest is the identity record linked one-to-one with an authenticated
// email.  Guests are created lazily on first sign-in with empty profile
// fields; nationality and national ID are filled in later through the
// profile update flow.
//
// Fields:
//  ID          – primary key identifier.
//  Email       – unique email, the natural key used during sign-in.
//  FullName    – display name taken from the identity provider.
//  Nationality – country name chosen by the guest (may be empty).
//  NationalID  – passport or ID card number (may be empty).
//  CountryFlag – flag image reference resolved from the country lookup.
type Guest struct {
	ID          uint64 `json:"id"`           // guests.id
	Email       string `json:"email"`        // guests.email
	FullName    string `json:"full_name"`    // guests.full_name
	Nationality string `json:"nationality"`  // guests.nationality
	NationalID  string `json:"national_id"`  // guests.national_id
	CountryFlag string `json:"country_flag"` // guests.country_flag
}
