// Package visibility decides what a negotiation participant may see of the
// other party. Every function here is pure: the result depends only on the
// record's status and party ids, plus the directory profile once unlocked.
package visibility

import (
	"blind_negotiation/internal/domain/entities"
)

const systemDisplayName = "System"

// DisplayIdentity is what a viewer is shown for one party.
// While masked only Role and DisplayName are populated.
type DisplayIdentity struct {
	Role        entities.PartyRole `json:"role"`
	DisplayName string             `json:"display_name"`
	Masked      bool               `json:"masked"`
	IsSelf      bool               `json:"is_self"`

	UserID      string `json:"user_id,omitempty"`
	Image       string `json:"image,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

// Pseudonym is the masked name of subjectID within n: Buyer_#1234 or
// Seller_#5678, built from the last four characters of the party id.
func Pseudonym(n *entities.Negotiation, subjectID string) string {
	role, ok := n.RoleOf(subjectID)
	if !ok {
		if subjectID == entities.SystemSenderID {
			return systemDisplayName
		}
		return "Participant"
	}
	if role == entities.PartyRoleBuyer {
		return "Buyer_#" + last4(n.BuyerID)
	}
	return "Seller_#" + last4(n.SellerID)
}

// ResolveDisplayName returns how viewerID sees subjectID. Real profile
// fields are used only when the status is ADMIN_VERIFIED or FINALIZED;
// profile may be nil, in which case an unlocked subject shows as User_<last4>.
func ResolveDisplayName(n *entities.Negotiation, viewerID, subjectID string, profile *entities.UserProfile) DisplayIdentity {
	if subjectID == entities.SystemSenderID {
		return DisplayIdentity{Role: entities.PartyRoleSystem, DisplayName: systemDisplayName}
	}

	role, _ := n.RoleOf(subjectID)
	id := DisplayIdentity{Role: role, IsSelf: subjectID != "" && subjectID == viewerID}

	if !n.Status.IsUnlocked() {
		id.DisplayName = Pseudonym(n, subjectID)
		id.Masked = true
		return id
	}

	id.UserID = subjectID
	if profile == nil || profile.Name == "" {
		id.DisplayName = "User_" + last4(subjectID)
		return id
	}
	id.DisplayName = profile.Name
	id.Image = profile.Image
	id.Email = profile.Email
	id.Phone = profile.Phone
	id.CompanyName = profile.CompanyName
	return id
}

func last4(id string) string {
	r := []rune(id)
	if len(r) <= 4 {
		return string(r)
	}
	return string(r[len(r)-4:])
}
