package auth

// AuthorizationPolicy decides whether a freshly registered account gets
// administrator rights. The decision is made once at signup; nothing grants
// or revokes admin status afterwards.
type AuthorizationPolicy interface {
	IsAdminUsername(username string) bool
}

// AdminUsername is the single account name that receives admin rights.
const AdminUsername = "admin"

// UsernamePolicy grants admin to the literal "admin" username and nobody else.
type UsernamePolicy struct{}

func (UsernamePolicy) IsAdminUsername(username string) bool {
	return username == AdminUsername
}
