package domain

// AdminProfile is a static seed record shown on the admin-team page. It is
// compiled in, never persisted and never mutated at runtime.
type AdminProfile struct {
	ID      int
	Name    string
	Avatar  string
	Contact string
	Bio     string
}

// AdminProfiles returns the built-in admin team.
func AdminProfiles() []AdminProfile {
	return []AdminProfile{
		{
			ID:      1,
			Name:    "Yuki",
			Avatar:  "https://api.dicebear.com/6.x/avataaars/svg?seed=yuki",
			Contact: "yuki@example.com",
			Bio:     "Frontend engineer, responsible for UI design and implementation",
		},
		{
			ID:      2,
			Name:    "Xiaofeng",
			Avatar:  "https://api.dicebear.com/6.x/avataaars/svg?seed=xiaofen",
			Contact: "xiaofeng@example.com",
			Bio:     "Full-stack engineer, responsible for system architecture and backend",
		},
		{
			ID:      3,
			Name:    "Nova",
			Avatar:  "https://api.dicebear.com/6.x/avataaars/svg?seed=nova",
			Contact: "nova@example.com",
			Bio:     "UI/UX designer, responsible for user experience and interface design",
		},
	}
}
