package service

// AllowList es el conjunto estático de emails autorizados a iniciar sesión.
// Una lista vacía no autoriza a nadie.
type AllowList struct {
	emails map[string]struct{}
}

func NewAllowList(emails []string) *AllowList {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		if normalized := normalizeEmail(e); normalized != "" {
			set[normalized] = struct{}{}
		}
	}
	return &AllowList{emails: set}
}

func (a *AllowList) Contains(email string) bool {
	if a == nil {
		return false
	}
	_, ok := a.emails[normalizeEmail(email)]
	return ok
}

func (a *AllowList) Len() int {
	if a == nil {
		return 0
	}
	return len(a.emails)
}
