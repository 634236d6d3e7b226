package controllers_test

import (
	"net/http"
	"testing"

	"github.com/Typical-techno/investigation-backend/internals/models"

	"golang.org/x/crypto/bcrypt"
)

func (ts *testServer) createAdmin(t *testing.T, email, password string, isAdmin, isActive bool) *models.Admin {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	admin := models.Admin{
		Email:    email,
		Username: "admin",
		Password: string(hash),
		IsAdmin:  isAdmin,
		IsActive: isActive,
	}
	if err := ts.db.Create(&admin).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}
	return &admin
}

func (ts *testServer) adminToken(t *testing.T, admin *models.Admin) string {
	t.Helper()
	token, err := ts.tokens.CreateAdminToken(admin.ID)
	if err != nil {
		t.Fatalf("create admin token: %v", err)
	}
	return token
}

func TestAdminLogin(t *testing.T) {
	ts := newTestServer(t)
	ts.createAdmin(t, "chief@gov.in", "secret123", true, true)
	ts.createAdmin(t, "benched@gov.in", "secret123", true, false)

	// Inactive admins are refused outright
	rec := ts.do(t, http.MethodPost, "/api/v1/admin/admin-login", map[string]string{
		"email": "benched@gov.in", "password": "secret123",
	}, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("inactive admin login status = %d, want 403", rec.Code)
	}

	rec = ts.do(t, http.MethodPost, "/api/v1/admin/admin-login", map[string]string{
		"email": "chief@gov.in", "password": "wrong",
	}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password status = %d, want 401", rec.Code)
	}

	rec = ts.do(t, http.MethodPost, "/api/v1/admin/admin-login", map[string]string{
		"email": "chief@gov.in", "password": "secret123",
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("admin login status = %d, body %s", rec.Code, rec.Body.String())
	}

	token, _ := decodeBody(t, rec)["token"].(string)
	if token == "" {
		t.Fatal("admin login missing token")
	}

	// The elevated token must be distinguishable from a user token
	claims, err := ts.tokens.Parse(token)
	if err != nil {
		t.Fatal(err)
	}
	if !claims.IsAdmin {
		t.Fatal("admin token missing role claim")
	}
}

func TestRegisterAdminGuard(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{
		"username": "newadmin", "email": "new@gov.in",
		"phoneNumber": "8888888888", "password": "secret123",
	}

	if rec := ts.do(t, http.MethodPost, "/api/v1/admin/register-admin", body, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated register status = %d, want 401", rec.Code)
	}

	// A plain user token must not open the admin surface
	user := ts.createUser(t, "user@gov.in", "pw", models.StatusActive)
	userToken, err := ts.tokens.CreateUserToken(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if rec := ts.do(t, http.MethodPost, "/api/v1/admin/register-admin", body, userToken); rec.Code != http.StatusForbidden {
		t.Fatalf("user-token register status = %d, want 403", rec.Code)
	}

	chief := ts.createAdmin(t, "chief@gov.in", "secret123", true, true)
	token := ts.adminToken(t, chief)

	if rec := ts.do(t, http.MethodPost, "/api/v1/admin/register-admin", body, token); rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d", rec.Code)
	}
	if rec := ts.do(t, http.MethodPost, "/api/v1/admin/register-admin", body, token); rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register status = %d, want 409", rec.Code)
	}
}

func TestRegisterAdminActivationPolicy(t *testing.T) {
	ts := newTestServer(t)
	chief := ts.createAdmin(t, "chief@gov.in", "secret123", true, true)
	token := ts.adminToken(t, chief)

	cases := []struct {
		email      string
		wantActive bool
	}{
		{"trusted@gov.in", true},
		{"outsider@example.com", false},
	}

	for _, tc := range cases {
		rec := ts.do(t, http.MethodPost, "/api/v1/admin/register-admin", map[string]string{
			"username": "x", "email": tc.email, "phoneNumber": "7777777777", "password": "pw",
		}, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("register %s status = %d", tc.email, rec.Code)
		}

		var admin models.Admin
		if err := ts.db.Where("email = ?", tc.email).First(&admin).Error; err != nil {
			t.Fatal(err)
		}
		if admin.IsActive != tc.wantActive {
			t.Errorf("%s: IsActive = %v, want %v", tc.email, admin.IsActive, tc.wantActive)
		}
		if !admin.IsAdmin {
			t.Errorf("%s: IsAdmin not set", tc.email)
		}
	}
}

func TestAdminMe(t *testing.T) {
	ts := newTestServer(t)
	chief := ts.createAdmin(t, "chief@gov.in", "secret123", true, true)
	token := ts.adminToken(t, chief)

	rec := ts.do(t, http.MethodGet, "/api/v1/admin/me", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin me status = %d", rec.Code)
	}

	// Deactivating the admin kills the guard even while the token lives
	if err := ts.db.Model(chief).Update("is_active", false).Error; err != nil {
		t.Fatal(err)
	}
	if rec := ts.do(t, http.MethodGet, "/api/v1/admin/me", nil, token); rec.Code != http.StatusForbidden {
		t.Fatalf("deactivated admin me status = %d, want 403", rec.Code)
	}
}

func TestNewRequestsListsPendingOnly(t *testing.T) {
	ts := newTestServer(t)
	ts.createUser(t, "pending1@gov.in", "pw", models.StatusPending)
	ts.createUser(t, "pending2@gov.in", "pw", models.StatusPending)
	ts.createUser(t, "active@gov.in", "pw", models.StatusActive)

	chief := ts.createAdmin(t, "chief@gov.in", "secret123", true, true)
	token := ts.adminToken(t, chief)

	rec := ts.do(t, http.MethodGet, "/api/v1/admin/new-request", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("new-request status = %d", rec.Code)
	}

	users, ok := decodeBody(t, rec)["users"].([]any)
	if !ok {
		t.Fatalf("response missing users array: %s", rec.Body.String())
	}
	if len(users) != 2 {
		t.Fatalf("pending users = %d, want 2", len(users))
	}
	for _, u := range users {
		entry := u.(map[string]any)
		if entry["status"] != string(models.StatusPending) {
			t.Errorf("non-pending user listed: %v", entry["email"])
		}
		if _, leaked := entry["password"]; leaked {
			t.Error("pending listing leaked a password hash")
		}
	}
}
