package services

import (
	"context"
	"fmt"
	"log/slog"
	"scrapbook/contract"
	"scrapbook/domain"
	"scrapbook/domain/mimetypes"
	"scrapbook/errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const picturesFolder = "profile-pictures"

// SaveProfileRequest carries the editable attributes.
// A nil Picture keeps the current one.
type SaveProfileRequest struct {
	DisplayName string `validate:"required,max=100"`
	Nickname    string `validate:"required,max=50"`
	Picture     []byte
}

type ProfileService struct {
	store     contract.IDocumentStore
	session   contract.ISessionTracker
	assets    contract.IAssetStorage
	validator *validator.Validate
	log       *slog.Logger
}

func NewProfileService(store contract.IDocumentStore, session contract.ISessionTracker, assets contract.IAssetStorage, log *slog.Logger) *ProfileService {
	return &ProfileService{
		store:     store,
		session:   session,
		assets:    assets,
		validator: validator.New(),
		log:       log,
	}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (domain.Profile, error) {
	if _, err := s.session.Require(); err != nil {
		return domain.Profile{}, err
	}
	doc, err := s.store.Get(ctx, domain.CollectionUsers, userID)
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.ProfileFromDocument(doc), nil
}

// Save merges the attributes into "users/{uid}". A picture is uploaded
// before the merge under a fresh path: when the merge fails the profile keeps
// pointing at its previous picture and the new blob is removed on a best effort basis.
func (s *ProfileService) Save(ctx context.Context, userID string, request SaveProfileRequest) (domain.Profile, error) {
	identity, err := requireOwner(s.session, userID)
	if err != nil {
		return domain.Profile{}, err
	}
	request.DisplayName = strings.TrimSpace(request.DisplayName)
	request.Nickname = strings.TrimSpace(request.Nickname)
	if err = s.validator.Struct(request); err != nil {
		return domain.Profile{}, fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}

	var contentType mimetypes.MIME
	if request.Picture != nil {
		contentType = mimetypes.Detect(request.Picture)
		if !mimetypes.IsPicture(contentType) {
			return domain.Profile{}, fmt.Errorf("%w: %s", errors.ErrUnsupportedMediaType, contentType)
		}
	}

	fields := domain.Fields{
		domain.FieldUID:         userID,
		domain.FieldEmail:       identity.Email,
		domain.FieldDisplayName: request.DisplayName,
		domain.FieldNickname:    request.Nickname,
	}
	var ref string
	if request.Picture != nil {
		path := fmt.Sprintf("%s/%s/%s%s", picturesFolder, userID, uuid.NewString(), mimetypes.Extension(contentType))
		if ref, err = s.assets.Upload(ctx, path, request.Picture, contentType); err != nil {
			return domain.Profile{}, err
		}
		fields[domain.FieldPhotoURL] = ref
	}

	if err = s.store.Set(ctx, domain.CollectionUsers, userID, fields); err != nil {
		if ref != "" {
			if delErr := s.assets.Delete(ctx, ref); delErr != nil {
				s.log.Warn("Orphaned profile picture", "uid", userID, "ref", ref, "error", delErr)
			}
		}
		return domain.Profile{}, err
	}

	doc, err := s.store.Get(ctx, domain.CollectionUsers, userID)
	if err != nil {
		return domain.Profile{}, err
	}
	s.log.Info("Profile saved", "uid", userID, "picture", ref != "")
	return domain.ProfileFromDocument(doc), nil
}

// PictureURL is empty when the profile has no picture.
func (s *ProfileService) PictureURL(ctx context.Context, profile domain.Profile) (string, error) {
	if profile.PictureRef == "" {
		return "", nil
	}
	return s.assets.ResolveDownloadURL(ctx, profile.PictureRef)
}
