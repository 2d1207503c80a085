package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/FlixonCoder/Ketpa-backend/authentication"
	"github.com/FlixonCoder/Ketpa-backend/configuration"
	"github.com/FlixonCoder/Ketpa-backend/controllers"
	"github.com/FlixonCoder/Ketpa-backend/models"
	"github.com/FlixonCoder/Ketpa-backend/routes"
)

const testSecret = "test-secret"

type sentMail struct {
	to      string
	subject string
	appt    models.Appointment
}

// fakeSender records deliveries so tests can wait for the fire-and-forget
// confirmation goroutine.
type fakeSender struct {
	ch chan sentMail
}

func newFakeSender() *fakeSender {
	return &fakeSender{ch: make(chan sentMail, 8)}
}

func (f *fakeSender) Send(to, subject string, appt *models.Appointment) error {
	f.ch <- sentMail{to: to, subject: subject, appt: *appt}
	return nil
}

func (f *fakeSender) wait(t *testing.T) sentMail {
	t.Helper()
	select {
	case m := <-f.ch:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("no confirmation mail delivered")
		return sentMail{}
	}
}

func newTestServer(t *testing.T) (*controllers.Server, *gin.Engine, *fakeSender) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := configuration.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := configuration.Config{
		JWTSecret:   testSecret,
		FrontendURL: "http://localhost:5173",
		City:        "Bangalore",
		Timezone:    "IST",
	}
	sender := newFakeSender()
	s := controllers.New(db, sender, nil, cfg)
	return s, routes.SetupRouter(s), sender
}

func createUser(t *testing.T, s *controllers.Server, phone string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := models.User{
		Name:     "Asha",
		Email:    fmt.Sprintf("user-%s@test.com", uuid.NewString()[:8]),
		Phone:    phone,
		Password: string(hash),
		Pet:      "Bruno",
	}
	if err := s.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createDoctor(t *testing.T, s *controllers.Server, available bool) models.Doctor {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	doctor := models.Doctor{
		Name:       "Rao",
		Email:      fmt.Sprintf("doc-%s@test.com", uuid.NewString()[:8]),
		Password:   string(hash),
		Speciality: "General",
		Fees:       500,
		ClinicName: "Ketpa Indiranagar",
		Address:    models.Address{Line1: "100 Feet Road", Line2: "Indiranagar"},
		Location:   "https://maps.example.com/ketpa",
		Available:  available,
	}
	if err := s.DB.Create(&doctor).Error; err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	return doctor
}

func userToken(t *testing.T, user models.User) string {
	t.Helper()
	token, err := authentication.GenerateUserToken(user.ID, user.Email, testSecret)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return token
}

func doctorToken(t *testing.T, doctor models.Doctor) string {
	t.Helper()
	token, err := authentication.GenerateDoctorToken(doctor.ID, doctor.Email, testSecret)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return token
}

// doJSON fires a request through the router and decodes the JSON envelope.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := map[string]interface{}{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, resp
}

func reloadDoctor(t *testing.T, s *controllers.Server, id uint) models.Doctor {
	t.Helper()
	var doctor models.Doctor
	if err := s.DB.First(&doctor, id).Error; err != nil {
		t.Fatalf("reload doctor: %v", err)
	}
	return doctor
}
