package auth

// Claims is the verified identity asserted by the external identity provider.
type Claims struct {
	Subject    string
	Email      string
	GivenName  *string
	FamilyName *string
}
