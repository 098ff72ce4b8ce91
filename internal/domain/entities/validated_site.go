package entities

type ValidatedSite struct {
	*Site
}

func NewValidatedSite(site *Site) (*ValidatedSite, error) {
	if err := site.validate(); err != nil {
		return nil, err
	}

	return &ValidatedSite{Site: site}, nil
}

func (vs *ValidatedSite) GetSite() *Site {
	return vs.Site
}
