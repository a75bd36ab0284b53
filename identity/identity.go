// Package identity reads the officer's identity out of the session token.
//
// Claims are decoded without verifying the signature. They drive display and which
// controls a page offers; the backend checks every call on its own.
package identity

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Role is a police rank as issued by the backend.
type Role string

// Roles known to the backend.
const (
	Constable     Role = "constable"
	HeadConstable Role = "head_constable"
	SubInspector  Role = "si"
	Inspector     Role = "sho"
	DySP          Role = "dy_sp"
	SP            Role = "sp"
	DIG           Role = "dig"
	IGP           Role = "igp"
	DGP           Role = "dgp"
	Admin         Role = "admin"
	Officer       Role = "officer"

	// legacySubInspector is still present in older tokens.
	legacySubInspector Role = "sub_inspector"
)

// Capability is an action a page may offer.
type Capability int

const (
	CreateCase Capability = iota
	ReviewRequest
	UploadEvidence
	ViewAuditLogs
	RegisterOfficer
)

var capabilities = map[Capability][]Role{
	CreateCase:      {SubInspector, Officer, legacySubInspector},
	ReviewRequest:   {Inspector, Admin, DySP, SP, DIG, IGP, DGP},
	UploadEvidence:  {Constable, HeadConstable, SubInspector, Inspector, Officer, legacySubInspector},
	RegisterOfficer: {Admin},
}

// Claims is the token payload.
type Claims struct {
	Role     string `json:"role"`
	Rank     string `json:"rank,omitempty"`
	Station  string `json:"station,omitempty"`
	District string `json:"district,omitempty"`
	Zone     string `json:"zone,omitempty"`
	jwt.RegisteredClaims
}

// Identity is the signed-in officer.
type Identity struct {
	Username string
	Role     Role
	Rank     string
	Station  string
	District string
	Zone     string
}

// Decode reads the claims of token. Only the token's shape is checked.
func Decode(token string) (Identity, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Identity{}, errors.Wrap(err, "malformed session token")
	}

	id := Identity{
		Username: claims.Subject,
		Role:     Role(strings.ToLower(claims.Role)),
		Rank:     claims.Rank,
		Station:  claims.Station,
		District: claims.District,
		Zone:     claims.Zone,
	}
	if id.Rank == "" {
		id.Rank = claims.Role
	}
	return id, nil
}

// Can reports whether the officer's role is offered c.
func (i Identity) Can(c Capability) bool {
	if c == ViewAuditLogs {
		return i.Role != ""
	}
	for _, r := range capabilities[c] {
		if r == i.Role {
			return true
		}
	}
	return false
}

// RankLabel is the upper-cased rank shown in the navigation bar.
func (i Identity) RankLabel() string {
	return strings.ToUpper(i.Rank)
}

// ScopeText describes the officer's jurisdiction, or "" when it is unknown.
func (i Identity) ScopeText() string {
	switch i.Role {
	case Constable, SubInspector, Inspector:
		if i.Station != "" {
			return "Station: " + i.Station
		}
	case SP, DySP:
		if i.District != "" {
			return "District: " + i.District
		}
	case DGP:
		return "State: Uttar Pradesh"
	}
	return ""
}
