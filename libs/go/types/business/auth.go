package business

// AdminUser is the authenticated caller of an admin endpoint
type AdminUser struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Method string `json:"method"`
}

// Admin authentication methods
const (
	AuthMethodSupabase = "supabase"
	AuthMethodAPIKey   = "api_key"
)
