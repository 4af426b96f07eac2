package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"moneywise/internal/handlers"
	"moneywise/internal/logger"
	"moneywise/internal/middleware"
	"moneywise/internal/models"
	"moneywise/internal/services"
	"moneywise/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Budget{},
		&models.Transaction{},
		&models.Label{},
		&models.Category{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	transactionService := services.NewTransactionService(db)
	budgetService := services.NewBudgetService(db)
	labelService := services.NewLabelService(db)
	categoryService := services.NewCategoryService(db)

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	labelHandler := handlers.NewLabelHandler(labelService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	txn := router.Group("/txn")
	txn.POST("/create", transactionHandler.Create)
	txn.POST("/filter", transactionHandler.Filter)
	txn.GET("", transactionHandler.ListByCreator)
	txn.GET("/all/:email/:page/:count", transactionHandler.List)
	txn.GET("/spent/:email", transactionHandler.Spent)
	txn.GET("/:id", transactionHandler.GetByID)
	txn.PUT("/update/:id", transactionHandler.Update)
	txn.DELETE("/:id", transactionHandler.Delete)

	budget := router.Group("/budget")
	budget.POST("/create", budgetHandler.Create)
	budget.GET("/all/:email", budgetHandler.List)
	budget.GET("/all/:email/:status", budgetHandler.List)
	budget.GET("/stats/:id", budgetHandler.Stats)
	budget.GET("/:id", budgetHandler.GetByID)
	budget.PUT("/update/:id", budgetHandler.Update)
	budget.PUT("/share/:id/:email", budgetHandler.Share)

	router.GET("/label/all/:email", labelHandler.GetUserTags)
	router.GET("/category/all", categoryHandler.List)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createBudget creates a budget over the API and returns its ID.
func (app *testApp) createBudget(t *testing.T, name, createdBy string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"total_budget":1000,"start_date":"2024-01-01","end_date":"2024-12-31","created_by":%q}`, name, createdBy)
	rec := app.request("POST", "/budget/create", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create budget failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	budget := result["budget"].(map[string]interface{})
	return budget["id"].(string)
}

// createTransaction creates a transaction over the API and returns its ID.
func (app *testApp) createTransaction(t *testing.T, budgetID, createdBy, title, category, date string, amount float64) string {
	t.Helper()
	body := fmt.Sprintf(`{"title":%q,"amount":%v,"category":%q,"date":%q,"created_by":%q,"budget_id":%q}`,
		title, amount, category, date, createdBy, budgetID)
	rec := app.request("POST", "/txn/create", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	txn := result["transaction"].(map[string]interface{})
	return txn["id"].(string)
}
