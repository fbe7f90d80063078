package domain

// Role gates site areas. Admin satisfies any staff requirement.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// NavLink is one entry of the role-specific site navigation.
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Icon  string `json:"icon"`
}

// LinksFor maps every role to its navigation links. The mapping is total:
// an unknown role gets no links rather than silently inheriting another
// role's menu.
func LinksFor(role Role) []NavLink {
	switch role {
	case RoleCustomer:
		return []NavLink{
			{Label: "Home", Href: "/homepage.html", Icon: "fa-home"},
			{Label: "Services", Href: "/products.html", Icon: "fa-cog"},
			{Label: "Contact", Href: "/contact.html", Icon: "fa-phone"},
		}
	case RoleStaff:
		return []NavLink{
			{Label: "Service Tracker", Href: "/tracker.html", Icon: "fa-clipboard-list"},
			{Label: "Home", Href: "/homepage.html", Icon: "fa-home"},
		}
	case RoleAdmin:
		return []NavLink{
			{Label: "Dashboard", Href: "/dashboard.html", Icon: "fa-chart-bar"},
			{Label: "Service Tracker", Href: "/tracker.html", Icon: "fa-clipboard-list"},
			{Label: "Home", Href: "/homepage.html", Icon: "fa-home"},
		}
	default:
		return nil
	}
}

// User is a staff or admin account able to sign in to the back office.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}
