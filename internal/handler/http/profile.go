package http

import (
	"net/http"

	"github.com/MKhiriev/go-travel-journal/internal/app"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/synchronizer"
	"github.com/MKhiriev/go-travel-journal/models"
)

// Actions of the edit-profile form.
const (
	actionUploadAvatar = "avatar"
	actionRemoveAvatar = "remove-avatar"
	actionSaveProfile  = "save"
)

const editProfilePath = "/dashboard/edit-profile"

type editProfileView struct {
	Profile models.PublicProfile
	Form    profileForm
}

func (h *Handler) editProfilePage(w http.ResponseWriter, r *http.Request) {
	profile := h.currentProfile(r)
	h.renderEditProfile(w, r, http.StatusOK, profile, profileFormFrom(profile), "")
}

// editProfile handles the three actions of the page: uploading an avatar,
// removing it and saving the text fields.
func (h *Handler) editProfile(w http.ResponseWriter, r *http.Request) {
	files, closeFiles, err := parseImages(w, r, "avatar")
	defer closeFiles()

	profile := h.currentProfile(r)
	if err != nil {
		h.renderEditProfile(w, r, statusFromError(err), profile, profileFormFrom(profile), service.UserMessage(err, app.MsgProfileUpdateError))
		return
	}

	switch r.PostFormValue("action") {
	case actionUploadAvatar:
		h.uploadAvatar(w, r, profile, files)
	case actionRemoveAvatar:
		h.removeAvatar(w, r, profile)
	default:
		h.saveProfile(w, r, profile)
	}
}

func (h *Handler) uploadAvatar(w http.ResponseWriter, r *http.Request, profile *models.Profile, files []models.ImageFile) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	session, _ := sessionFrom(ctx)
	userID := session.UserID()

	if len(files) == 0 {
		h.renderEditProfile(w, r, http.StatusUnprocessableEntity, profile, profileFormFrom(profile), app.MsgSelectImageFile)
		return
	}

	result := h.services.StorageService.UploadAvatar(ctx, userID, files[0])
	if !result.Success {
		log.Warn().Str("reason", result.Error).Msg("avatar not uploaded")
		h.renderEditProfile(w, r, http.StatusUnprocessableEntity, profile, profileFormFrom(profile), result.Error)
		return
	}

	updated, err := h.services.ProfileService.UpsertProfile(ctx, userID, models.ProfileUpdate{AvatarURL: &result.URL})
	if err != nil {
		log.Err(err).Msg("avatar url not saved")
		h.renderEditProfile(w, r, statusFromError(err), profile, profileFormFrom(profile), service.UserMessage(err, app.MsgFailedUploadAvatar))
		return
	}

	// the previous file is removed once the profile points at the new one
	if profile != nil && profile.AvatarURL != nil {
		if name := service.AvatarFileName(userID, *profile.AvatarURL); name != "" {
			h.services.StorageService.DeleteAvatar(ctx, userID, name)
		}
	}

	h.shareProfile(r, updated)
	h.redirectWithFlash(w, r, editProfilePath, flashNotice, app.MsgAvatarUpdated)
}

func (h *Handler) removeAvatar(w http.ResponseWriter, r *http.Request, profile *models.Profile) {
	ctx := r.Context()
	session, _ := sessionFrom(ctx)
	userID := session.UserID()

	updated, err := h.services.ProfileService.UpsertProfile(ctx, userID, models.ProfileUpdate{AvatarURL: models.Ptr("")})
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("avatar not removed")
		h.renderEditProfile(w, r, statusFromError(err), profile, profileFormFrom(profile), service.UserMessage(err, app.MsgFailedRemoveAvatar))
		return
	}

	if profile != nil && profile.AvatarURL != nil {
		if name := service.AvatarFileName(userID, *profile.AvatarURL); name != "" {
			h.services.StorageService.DeleteAvatar(ctx, userID, name)
		}
	}

	h.shareProfile(r, updated)
	h.redirectWithFlash(w, r, editProfilePath, flashNotice, app.MsgAvatarRemoved)
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request, profile *models.Profile) {
	ctx := r.Context()
	session, _ := sessionFrom(ctx)

	form := profileFormFromRequest(r)
	update := form.update()
	if err := h.validator.Validate(ctx, update); err != nil {
		h.renderEditProfile(w, r, statusFromError(err), profile, form, service.UserMessage(err, app.MsgFailedUpdateProfile))
		return
	}

	updated, err := h.services.ProfileService.UpsertProfile(ctx, session.UserID(), update)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("profile not saved")
		h.renderEditProfile(w, r, statusFromError(err), profile, form, service.UserMessage(err, app.MsgFailedUpdateProfile))
		return
	}

	h.shareProfile(r, updated)
	h.redirectWithFlash(w, r, editProfilePath, flashNotice, app.MsgProfileUpdated)
}

// currentProfile returns the stored profile of the caller. A failed read is
// treated as no profile yet.
func (h *Handler) currentProfile(r *http.Request) *models.Profile {
	ctx := r.Context()
	session, _ := sessionFrom(ctx)

	profile, err := h.services.ProfileService.GetProfile(ctx, session.UserID())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("profile not loaded")
		return nil
	}
	return profile
}

// shareProfile publishes the written profile to every view of the session.
func (h *Handler) shareProfile(r *http.Request, profile *models.Profile) {
	if profile == nil {
		return
	}
	if st, ok := synchronizer.ProfileStateFrom(r.Context()); ok {
		st.Update(profile)
	}
}

func (h *Handler) renderEditProfile(w http.ResponseWriter, r *http.Request, status int, profile *models.Profile, form profileForm, alert string) {
	session, _ := sessionFrom(r.Context())
	user := session.User

	pd := h.newPage(w, r, "Edit profile")
	pd.Alert = alert
	pd.Data = editProfileView{
		Profile: models.NewPublicProfile(profile, &user),
		Form:    form,
	}
	h.render(w, r, status, "edit_profile", pd)
}
