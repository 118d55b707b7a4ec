package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/profile"
)

func ownerPath(owner uuid.UUID, suffix string) string {
	return fmt.Sprintf("/owners/%s%s", owner, suffix)
}

func TestHandleCreate(t *testing.T) {
	owner := uuid.New()

	t.Run("created", func(t *testing.T) {
		svc := &mockService{}
		p := profile.New(owner, "Alpha")
		svc.On("CreateProfile", mock.Anything, owner, "Alpha").Return(p, nil)

		w := serve(svc, http.MethodPost, ownerPath(owner, "/profiles"), `{"name":"Alpha"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		var got profile.Profile
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, "Alpha", got.Name)
		svc.AssertExpectations(t)
	})

	t.Run("service rejections map to status codes", func(t *testing.T) {
		tests := []struct {
			err    error
			status int
			msg    string
		}{
			{domain.ErrInvalidProfileName, http.StatusBadRequest, ErrMsgInvalidNameError},
			{domain.ErrDuplicateProfileName, http.StatusConflict, ErrMsgDuplicateNameError},
			{domain.ErrProfileLimitReached, http.StatusConflict, ErrMsgProfileLimitError},
			{fmt.Errorf("%w: disk full", domain.ErrPersistence), http.StatusServiceUnavailable, ErrMsgStorageUnavailable},
			{assert.AnError, http.StatusInternalServerError, ErrMsgGenericServerError},
		}
		for _, tt := range tests {
			t.Run(tt.err.Error(), func(t *testing.T) {
				svc := &mockService{}
				svc.On("CreateProfile", mock.Anything, owner, "Alpha").Return(nil, tt.err)

				w := serve(svc, http.MethodPost, ownerPath(owner, "/profiles"), `{"name":"Alpha"}`)

				assert.Equal(t, tt.status, w.Code)
				assert.Contains(t, w.Body.String(), tt.msg)
			})
		}
	})

	t.Run("bad requests never reach the service", func(t *testing.T) {
		svc := &mockService{}

		w := serve(svc, http.MethodPost, "/owners/not-a-uuid/profiles", `{"name":"Alpha"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidOwnerID)

		w = serve(svc, http.MethodPost, ownerPath(owner, "/profiles"), `{"name":"Alpha","extra":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = serve(svc, http.MethodPost, ownerPath(owner, "/profiles"), `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"name"`)

		svc.AssertNotCalled(t, "CreateProfile", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleList(t *testing.T) {
	owner := uuid.New()
	a := profile.New(owner, "Alpha")
	b := profile.New(owner, "Beta")

	t.Run("with active profile", func(t *testing.T) {
		svc := &mockService{}
		svc.On("GetProfiles", mock.Anything, owner).Return([]*profile.Profile{b, a}, nil)
		svc.On("GetActiveProfile", mock.Anything, owner).Return(b, nil)

		w := serve(svc, http.MethodGet, ownerPath(owner, "/profiles"), "")

		require.Equal(t, http.StatusOK, w.Code)
		var got struct {
			Profiles []profile.Profile `json:"profiles"`
			Active   *uuid.UUID        `json:"active_profile_id"`
			Limit    int               `json:"limit"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got.Profiles, 2)
		assert.Equal(t, b.ID, got.Profiles[0].ID)
		require.NotNil(t, got.Active)
		assert.Equal(t, b.ID, *got.Active)
		assert.Equal(t, profile.MaxProfilesPerOwner, got.Limit)
	})

	t.Run("without active profile", func(t *testing.T) {
		svc := &mockService{}
		svc.On("GetProfiles", mock.Anything, owner).Return([]*profile.Profile{}, nil)
		svc.On("GetActiveProfile", mock.Anything, owner).Return(nil, domain.ErrNoActiveProfile)

		w := serve(svc, http.MethodGet, ownerPath(owner, "/profiles"), "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "active_profile_id")
	})
}

func TestHandleGetAndDelete(t *testing.T) {
	owner := uuid.New()
	p := profile.New(owner, "Alpha")
	path := ownerPath(owner, "/profiles/"+p.ID.String())

	svc := &mockService{}
	svc.On("GetProfile", mock.Anything, owner, p.ID).Return(p, nil)
	svc.On("DeleteProfile", mock.Anything, owner, p.ID).Return(true, nil).Once()
	svc.On("DeleteProfile", mock.Anything, owner, p.ID).Return(false, nil).Once()

	w := serve(svc, http.MethodGet, path, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(svc, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgProfileDeleted)

	w = serve(svc, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(svc, http.MethodGet, ownerPath(owner, "/profiles/nope"), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgInvalidProfileID)

	svc.AssertExpectations(t)
}

func TestActiveProfileEndpoints(t *testing.T) {
	owner := uuid.New()
	p := profile.New(owner, "Alpha")

	svc := &mockService{}
	svc.On("SetActiveProfile", mock.Anything, owner, p.ID).Return(p, nil)
	svc.On("GetActiveProfile", mock.Anything, owner).Return(p, nil).Once()
	svc.On("ClearActiveProfile", mock.Anything, owner).Return(true)
	svc.On("GetActiveProfile", mock.Anything, owner).Return(nil, domain.ErrNoActiveProfile)

	w := serve(svc, http.MethodPut, ownerPath(owner, "/active"), fmt.Sprintf(`{"profile_id":%q}`, p.ID))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(svc, http.MethodGet, ownerPath(owner, "/active"), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), p.ID.String())

	w = serve(svc, http.MethodDelete, ownerPath(owner, "/active"), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(svc, http.MethodGet, ownerPath(owner, "/active"), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgNoActiveProfileError)

	svc.AssertExpectations(t)
}
