package cinema

import "slices"

type Certification string

const (
	CertificationU  Certification = "U"
	CertificationUA Certification = "UA"
	CertificationA  Certification = "A"
	CertificationS  Certification = "S"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type RoleType string

const (
	RoleLead       RoleType = "Lead"
	RoleSupporting RoleType = "Supporting"
	RoleCameo      RoleType = "Cameo"
)

type CrewRole string

const (
	CrewDirector        CrewRole = "Director"
	CrewCinematographer CrewRole = "Cinematographer"
	CrewMusicDirector   CrewRole = "Music Director"
	CrewEditor          CrewRole = "Editor"
	CrewProducer        CrewRole = "Producer"
	CrewWriter          CrewRole = "Writer"
	CrewChoreographer   CrewRole = "Choreographer"
	CrewOther           CrewRole = "Other"
)

type CollectionStatus string

const (
	CollectionPending   CollectionStatus = "pending"
	CollectionUpdated   CollectionStatus = "updated"
	CollectionConfirmed CollectionStatus = "confirmed"
)

func Certifications() []Certification {
	return []Certification{CertificationU, CertificationUA, CertificationA, CertificationS}
}

func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

func RoleTypes() []RoleType {
	return []RoleType{RoleLead, RoleSupporting, RoleCameo}
}

func CrewRoles() []CrewRole {
	return []CrewRole{
		CrewDirector,
		CrewCinematographer,
		CrewMusicDirector,
		CrewEditor,
		CrewProducer,
		CrewWriter,
		CrewChoreographer,
		CrewOther,
	}
}

func CollectionStatuses() []CollectionStatus {
	return []CollectionStatus{CollectionPending, CollectionUpdated, CollectionConfirmed}
}

func (c Certification) Valid() bool    { return slices.Contains(Certifications(), c) }
func (g Gender) Valid() bool           { return slices.Contains(Genders(), g) }
func (r RoleType) Valid() bool         { return slices.Contains(RoleTypes(), r) }
func (r CrewRole) Valid() bool         { return slices.Contains(CrewRoles(), r) }
func (s CollectionStatus) Valid() bool { return slices.Contains(CollectionStatuses(), s) }

// Strings converts an enum list for use with form.OneOf and CLI help text.
func Strings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for idx, value := range values {
		out[idx] = string(value)
	}

	return out
}
