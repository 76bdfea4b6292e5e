package router

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gramseva/config"
	"gramseva/internal/domain"
	"gramseva/internal/middleware"
	"gramseva/internal/models"
	"gramseva/internal/repository"
	"gramseva/pkg/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupFull builds the complete engine with the HTML templates and
// static mounts. The working directory moves to the module root so the
// template glob resolves.
func setupFull(t *testing.T) *env {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir("../.."))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	e := newEnv(t)
	e.engine = Setup(e.cfg, e.db, e.store, mailer.New(&config.MailConfig{}), zap.NewNop())
	return e
}

func (e *env) doPage(t *testing.T, method, path, cookie string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func (e *env) doPageMultipart(t *testing.T, path, cookie string, fields map[string]string, fileField, filename string, file []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func seedPortal(t *testing.T, e *env) {
	t.Helper()
	require.NoError(t, repository.NewVillageRepository(e.db).Create(&models.Village{
		Name: "Rampur", State: "Maharashtra", District: "Pune", Taluka: "Haveli",
		Description: "A small village on the river.",
	}))
	require.NoError(t, repository.NewMemberRepository(e.db).Create(&models.Member{
		Name: "Sunita Patil", Position: domain.PositionSarpanch,
		PhotoPath: "members/sunita.jpg", IsActive: true,
	}))
	require.NoError(t, repository.NewSchemeRepository(e.db).Create(&models.Scheme{
		SchemeName: "Clean Water Mission", SchemeCode: "CWM", Category: "health",
		Ministry: "Ministry of Jal Shakti", Description: "d", Objectives: "o",
		EligibilityCriteria: "e", Benefits: "b", ApplicationProcess: "a",
		RequiredDocuments: "r", IsActive: true,
	}))
	require.NoError(t, repository.NewGalleryRepository(e.db).Create(&models.GalleryImage{
		Title: "Harvest Fair", Category: "festival",
		ImagePath: "gallery/2026/08/fair.jpg", Featured: true,
	}))
}

func TestPublicPagesRender(t *testing.T) {
	e := setupFull(t)
	seedPortal(t, e)

	for path, want := range map[string]string{
		"/":        "Rampur",
		"/about":   "About Rampur",
		"/members": "Sunita Patil",
		"/schemes": "Clean Water Mission",
		"/gallery": "Harvest Fair",
		"/contact": "Contact Us",
	} {
		w := e.doPage(t, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), want, path)
	}
}

func TestContactPageStoresMessage(t *testing.T) {
	e := setupFull(t)

	w := e.doPage(t, http.MethodPost, "/contact", "", url.Values{
		"name":    {"Visitor"},
		"email":   {"visitor@example.org"},
		"subject": {"Street lights"},
		"message": {"Ward 3 lights are out."},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Thank you")

	var m models.ContactMessage
	require.NoError(t, e.db.First(&m).Error)
	assert.False(t, m.IsRead)
}

func TestAdminLoginSetsCookieAndGatesDashboard(t *testing.T) {
	e := setupFull(t)
	require.NoError(t, seedStaffUser(e.db, "admin@gramseva.local", "s3cret-pass"))

	w := e.doPage(t, http.MethodGet, "/admin/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.doPage(t, http.MethodPost, "/admin/login", "", url.Values{
		"email": {"admin@gramseva.local"}, "password": {"wrong"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.doPage(t, http.MethodPost, "/admin/login", "", url.Values{
		"email": {"admin@gramseva.local"}, "password": {"s3cret-pass"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))

	var token string
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.TokenCookie {
			token = c.Value
		}
	}
	require.NotEmpty(t, token)

	w = e.doPage(t, http.MethodGet, "/admin/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dashboard")
}

func villageForm(name, description string) url.Values {
	return url.Values{
		"village_name": {name},
		"state":        {"Maharashtra"},
		"district":     {"Pune"},
		"taluka":       {"Haveli"},
		"description":  {description},
	}
}

func TestAdminVillageUpsert(t *testing.T) {
	e := setupFull(t)
	cookie := e.token(t, domain.RoleStaff)

	w := e.doPage(t, http.MethodPost, "/admin/village", cookie, villageForm("Rampur", "first draft"))
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())

	var count int64
	e.db.Model(&models.Village{}).Count(&count)
	require.EqualValues(t, 1, count)

	// a second save updates the existing row instead of adding one
	w = e.doPage(t, http.MethodPost, "/admin/village", cookie, villageForm("Rampur", "revised"))
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())

	e.db.Model(&models.Village{}).Count(&count)
	assert.EqualValues(t, 1, count)
	var v models.Village
	require.NoError(t, e.db.First(&v).Error)
	assert.Equal(t, "revised", v.Description)
}

func TestAdminVillageSaveFailsClosedOnNameCheckError(t *testing.T) {
	e := setupFull(t)
	cookie := e.token(t, domain.RoleStaff)
	require.NoError(t, repository.NewVillageRepository(e.db).Create(&models.Village{
		Name: "Rampur", State: "Maharashtra", District: "Pune", Taluka: "Haveli",
	}))

	// break the uniqueness lookup without breaking the row load
	require.NoError(t, e.db.Exec(`ALTER TABLE villages RENAME COLUMN name TO name_old`).Error)

	w := e.doPage(t, http.MethodPost, "/admin/village", cookie, villageForm("Rampur", "x"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Could not save village.")
}

func TestAdminMemberSaveAndDelete(t *testing.T) {
	e := setupFull(t)
	cookie := e.token(t, domain.RoleStaff)

	w := e.doPageMultipart(t, "/admin/members", cookie,
		map[string]string{"name": "Anil Jadhav", "position": "member"},
		"photo", "anil.jpg", testJPEG(t, 600, 600))
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())
	assert.Equal(t, "/admin/members", w.Header().Get("Location"))

	var m models.Member
	require.NoError(t, e.db.First(&m).Error)
	require.NotEmpty(t, m.PhotoPath)
	photo := filepath.Join(e.store.Root(), filepath.FromSlash(m.PhotoPath))
	_, err := os.Stat(photo)
	require.NoError(t, err)

	w = e.doPage(t, http.MethodGet, "/admin/members", cookie, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Anil Jadhav")

	w = e.doPage(t, http.MethodPost, fmt.Sprintf("/admin/members/%d/delete", m.ID), cookie, nil)
	require.Equal(t, http.StatusFound, w.Code)

	var count int64
	e.db.Model(&models.Member{}).Count(&count)
	assert.Zero(t, count)
	_, err = os.Stat(photo)
	assert.True(t, os.IsNotExist(err))
}
