package service

import "github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"

// MenuForRole returns the sidebar for a role. Every role sees Overview
// first and Settings last; the middle section is exclusive to the role.
// A role-less session gets an empty menu and is routed to role selection.
func MenuForRole(role entity.Role) []entity.MenuItem {
	var items []entity.MenuItem

	switch role {
	case entity.RoleAdmin:
		items = []entity.MenuItem{
			{Label: "Users", Icon: "users", Path: "/dashboard/users"},
			{Label: "Candidates", Icon: "user-check", Path: "/dashboard/candidates"},
			{Label: "Partners", Icon: "handshake", Path: "/dashboard/partners"},
			{Label: "News Moderation", Icon: "newspaper", Path: "/dashboard/news"},
			{Label: "Jobs", Icon: "briefcase", Path: "/dashboard/jobs"},
			{Label: "Messages", Icon: "mail", Path: "/dashboard/messages"},
		}
	case entity.RoleClient:
		items = []entity.MenuItem{
			{Label: "Projects", Icon: "folder", Path: "/dashboard/projects"},
			{Label: "Invoices", Icon: "receipt", Path: "/dashboard/invoices"},
			{Label: "Support", Icon: "life-buoy", Path: "/dashboard/support"},
		}
	case entity.RoleCandidate:
		items = []entity.MenuItem{
			{Label: "Job Board", Icon: "briefcase", Path: "/dashboard/job-board"},
			{Label: "Applications", Icon: "file-text", Path: "/dashboard/applications"},
			{Label: "Career Copilot", Icon: "sparkles", Path: "/dashboard/copilot"},
		}
	case entity.RolePartner:
		items = []entity.MenuItem{
			{Label: "Tasks", Icon: "check-square", Path: "/dashboard/tasks"},
			{Label: "Earnings", Icon: "wallet", Path: "/dashboard/earnings"},
			{Label: "News", Icon: "newspaper", Path: "/dashboard/partner-news"},
		}
	default:
		return nil
	}

	menu := make([]entity.MenuItem, 0, len(items)+2)
	menu = append(menu, entity.MenuItem{Label: "Overview", Icon: "home", Path: "/dashboard"})
	menu = append(menu, items...)
	menu = append(menu, entity.MenuItem{Label: "Settings", Icon: "settings", Path: "/dashboard/settings"})

	return menu
}
