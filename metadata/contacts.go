package metadata

import (
	"encoding/xml"

	"github.com/JiscSD/csw-simple-metadata/iso"
)

// Responsible party roles (gmd:CI_RoleCode).
const (
	RolePointOfContact = "pointOfContact"
	RolePublisher      = "publisher"
	RoleOwner          = "owner"
	RoleDistributor    = "distributor"
)

// Contact is a responsible party of the record or of the resource.
type Contact struct {
	Name                string `yaml:"name,omitempty"`
	Organization        string `yaml:"organization,omitempty"`
	EnglishOrganization string `yaml:"english_organization,omitempty"`
	Email               string `yaml:"email,omitempty"`
	Role                string `yaml:"role,omitempty"`
}

var emailPath = []xml.Name{
	gmd("contactInfo"), gmd("CI_Contact"), gmd("address"), gmd("CI_Address"), gmd("electronicMailAddress"),
}

func readContact(party *iso.Element) *Contact {
	if party == nil {
		return nil
	}
	org := party.Child(gmd("organisationName"))
	return &Contact{
		Name:                Primary(party.Child(gmd("individualName"))),
		Organization:        Primary(org),
		EnglishOrganization: Alternate(org, LocaleLinkEng),
		Email:               Primary(party.Find(emailPath...)),
		Role:                firstCode(party.Child(gmd("role"))),
	}
}

// writeContact updates party in place so that phone numbers, addresses and
// the like are kept.
func writeContact(party *iso.Element, c Contact) {
	if c.Name != "" {
		SetPrimary(party.Ensure(gmd("individualName")), c.Name)
	}
	if c.Organization != "" || c.EnglishOrganization != "" {
		org := party.Ensure(gmd("organisationName"))
		if c.Organization != "" {
			SetPrimary(org, c.Organization)
		}
		if c.EnglishOrganization != "" {
			SetAlternate(org, LocaleLinkEng, c.EnglishOrganization)
		}
	}
	if c.Email != "" {
		SetPrimary(party.Ensure(emailPath...), c.Email)
	}
	setCode(party.Ensure(gmd("role")), "CI_RoleCode", c.Role)
}

// partyWithRole returns the first responsible party of the given properties
// having role.
func partyWithRole(props []*iso.Element, role string) *iso.Element {
	for _, p := range props {
		party := p.Child(gmd("CI_ResponsibleParty"))
		if party != nil && firstCode(party.Child(gmd("role"))) == role {
			return party
		}
	}
	return nil
}

// ContactMetadata returns the first contact of the record itself.
func ContactMetadata(doc *iso.Document) (*Contact, error) {
	root, err := metadataRoot(doc)
	if err != nil {
		return nil, err
	}
	return readContact(root.Find(gmd("contact"), gmd("CI_ResponsibleParty"))), nil
}

// SetContactMetadata overwrites the first contact of the record. The role
// defaults to point of contact.
func SetContactMetadata(doc *iso.Document, c Contact) error {
	root, err := metadataRoot(doc)
	if err != nil {
		return err
	}
	if c.Role == "" {
		c.Role = RolePointOfContact
	}
	writeContact(root.Ensure(gmd("contact"), gmd("CI_ResponsibleParty")), c)
	return nil
}

func resourceContact(doc *iso.Document, role string) (*Contact, error) {
	ident, err := identification(doc)
	if err != nil {
		return nil, err
	}
	return readContact(partyWithRole(ident.ChildrenNamed(gmd("pointOfContact")), role)), nil
}

func setResourceContact(doc *iso.Document, role string, c Contact) error {
	ident, err := identification(doc)
	if err != nil {
		return err
	}
	c.Role = role
	party := partyWithRole(ident.ChildrenNamed(gmd("pointOfContact")), role)
	if party == nil {
		party = iso.NewElement(gmd("CI_ResponsibleParty"))
		ident.Insert(iso.NewElement(gmd("pointOfContact"), party))
	}
	writeContact(party, c)
	return nil
}

// ContactPublisher returns the publisher of the resource, or nil.
func ContactPublisher(doc *iso.Document) (*Contact, error) {
	return resourceContact(doc, RolePublisher)
}

// SetContactPublisher sets the publisher of the resource.
func SetContactPublisher(doc *iso.Document, c Contact) error {
	return setResourceContact(doc, RolePublisher, c)
}

// ContactOwner returns the owner of the resource, or nil.
func ContactOwner(doc *iso.Document) (*Contact, error) {
	return resourceContact(doc, RoleOwner)
}

// SetContactOwner sets the owner of the resource.
func SetContactOwner(doc *iso.Document, c Contact) error {
	return setResourceContact(doc, RoleOwner, c)
}
