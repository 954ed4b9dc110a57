package gap

import "strings"

// Draft accumulates profile fields as the user fills in the create form,
// before the profile has a server-assigned id.
type Draft struct {
	Name            string
	CurrentRole     string
	ExperienceYears float64
	Skills          []Skill
	Certifications  []string
}

// AddSkill appends a skill to the draft. Blank or whitespace-only names
// leave the list unchanged.
func (d *Draft) AddSkill(name string, prof Proficiency, years float64) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	d.Skills = append(d.Skills, Skill{Name: name, Proficiency: prof, YearsExperience: years})
	return true
}

// AddCertification appends a certification. Blank or whitespace-only
// entries leave the list unchanged.
func (d *Draft) AddCertification(cert string) bool {
	cert = strings.TrimSpace(cert)
	if cert == "" {
		return false
	}
	d.Certifications = append(d.Certifications, cert)
	return true
}

// Validate checks the fields required before submitting the draft.
func (d *Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errBlank("name")
	}
	if strings.TrimSpace(d.CurrentRole) == "" {
		return errBlank("current role")
	}
	return nil
}

// Profile converts the draft into the payload for createProfile. The
// returned profile has no id; the server assigns one.
func (d *Draft) Profile() Profile {
	skills := d.Skills
	if skills == nil {
		skills = []Skill{}
	}
	certs := d.Certifications
	if certs == nil {
		certs = []string{}
	}
	return Profile{
		Name:            strings.TrimSpace(d.Name),
		CurrentRole:     strings.TrimSpace(d.CurrentRole),
		ExperienceYears: d.ExperienceYears,
		Skills:          skills,
		Certifications:  certs,
	}
}

type errBlank string

func (e errBlank) Error() string { return string(e) + " is required" }
