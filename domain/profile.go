package domain

import "time"

// Profile holds the editable attributes of an identity.
// PictureRef is an asset storage reference, not a URL.
type Profile struct {
	UserID      string
	Email       string
	DisplayName string
	Nickname    string
	PictureRef  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ProfileFromDocument(doc Document) Profile {
	uid := doc.String(FieldUID)
	if uid == "" {
		uid = doc.ID
	}
	return Profile{
		UserID:      uid,
		Email:       doc.String(FieldEmail),
		DisplayName: doc.String(FieldDisplayName),
		Nickname:    doc.String(FieldNickname),
		PictureRef:  doc.String(FieldPhotoURL),
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

// Identity projects the profile, PhotoURL carries the picture reference as stored.
func (p Profile) Identity() Identity {
	return Identity{
		ID:          p.UserID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Nickname:    p.Nickname,
		PhotoURL:    p.PictureRef,
	}
}
