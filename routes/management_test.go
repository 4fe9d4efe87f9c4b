package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"hotel-management-server/models"
)

func staffRequest(t *testing.T, method, path, body string, role string) *http.Request {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	token := tokenFor(t, 5, "staff@hotel.local", role)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestManagementIndexRejectsCustomer(t *testing.T) {
	mock := newMockDB(t)
	router := newTestRouter()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRows(5, "staff@hotel.local", models.RoleCustomer))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, staffRequest(t, "GET", "/management/", "", models.RoleCustomer))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestManagementIndexAllowsManager(t *testing.T) {
	mock := newMockDB(t)
	router := newTestRouter()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRows(5, "staff@hotel.local", models.RoleManager))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, staffRequest(t, "GET", "/management/", "", models.RoleManager))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), models.RoleManager)
}

func TestListReviews(t *testing.T) {
	mock := newMockDB(t)
	router := newTestRouter()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRows(5, "staff@hotel.local", models.RoleManager))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT (.+) FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "rating", "comment", "customer_id", "invoice_no", "created_at"}).
			AddRow(2, 5, "lovely stay", 7, "2", time.Now()).
			AddRow(1, 4, "great food", 7, "1", time.Now()))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRows(7, "guest@hotel.local", models.RoleCustomer))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, staffRequest(t, "GET", "/management/reviews", "", models.RoleManager))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "great food")
	assert.Contains(t, w.Body.String(), `"total":2`)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCreateUserRequiresAdmin(t *testing.T) {
	mock := newMockDB(t)
	router := newTestRouter()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRows(5, "staff@hotel.local", models.RoleManager))

	body := `{"email":"new@hotel.local","pw":"secret1","name":"New User","role":"manager"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, staffRequest(t, "POST", "/management/users", body, models.RoleManager))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	mock := newMockDB(t)
	router := newTestRouter()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRows(5, "staff@hotel.local", models.RoleAdmin))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRows(9, "new@hotel.local", models.RoleCustomer))

	body := `{"email":"new@hotel.local","pw":"secret1","name":"New User","role":"manager"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, staffRequest(t, "POST", "/management/users", body, models.RoleAdmin))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCreateUser(t *testing.T) {
	mock := newMockDB(t)
	router := newTestRouter()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRows(5, "staff@hotel.local", models.RoleAdmin))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectCommit()

	body := `{"email":"new@hotel.local","pw":"secret1","name":"New User","role":"manager"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, staffRequest(t, "POST", "/management/users", body, models.RoleAdmin))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"manager"`)
	assert.Nil(t, mock.ExpectationsWereMet())
}
