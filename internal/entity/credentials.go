package entity

// BMCCredentials address a baseboard management controller with decrypted secrets.
type BMCCredentials struct {
	Host     string
	User     string
	Password string
}
