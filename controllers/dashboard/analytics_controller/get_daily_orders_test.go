package analytics_controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dashboard_cache "github.com/Cartlytics/cartlytics-insights-backend/cache"
	"github.com/Cartlytics/cartlytics-insights-backend/controllers/dashboard/analytics_controller"
	"github.com/Cartlytics/cartlytics-insights-backend/dataset"
	"github.com/Cartlytics/cartlytics-insights-backend/models"
	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/dashboard/daily-orders", analytics_controller.GetDailyOrders)
	r.GET("/admin/dashboard/overview", analytics_controller.GetOverview)
	return r
}

func seedSnapshot(t *testing.T) {
	t.Helper()
	approved := func(value string) *time.Time {
		parsed, err := time.Parse("2006-01-02 15:04", value)
		if err != nil {
			t.Fatalf("bad timestamp %q: %v", value, err)
		}
		return &parsed
	}
	category := "toys"
	five := 5
	four := 4

	lines := []models.OrderLine{
		{OrderID: "o1", CustomerID: "c1", CustomerState: "SP", OrderApprovedAt: approved("2017-05-03 09:00"), Price: 10, ProductCategory: &category, ReviewScore: &five},
		{OrderID: "o1", CustomerID: "c1", CustomerState: "SP", OrderApprovedAt: approved("2017-05-03 09:00"), Price: 20, ProductCategory: &category, ReviewScore: &five},
		{OrderID: "o2", CustomerID: "c2", CustomerState: "RJ", OrderApprovedAt: approved("2017-05-04 14:00"), Price: 30, ProductCategory: &category, ReviewScore: &five},
		{OrderID: "o3", CustomerID: "c3", CustomerState: "SP", OrderApprovedAt: approved("2017-05-04 16:00"), Price: 15, ProductCategory: &category, ReviewScore: &four},
	}
	dataset.Set(dataset.NewSnapshot(lines, nil))
	dashboard_cache.Invalidate()
	t.Cleanup(func() {
		dataset.Set(nil)
		dashboard_cache.Invalidate()
	})
}

func doRequest(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetDailyOrders_BeforeDatasetLoads(t *testing.T) {
	r := newTestRouter()
	dataset.Set(nil)

	w := doRequest(r, "/admin/dashboard/daily-orders")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}

func TestGetDailyOrders_ReturnsRowsInRange(t *testing.T) {
	r := newTestRouter()
	seedSnapshot(t)

	w := doRequest(r, "/admin/dashboard/daily-orders?start_date=2017-05-03&end_date=2017-05-03")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string                  `json:"message"`
		Data    []models.DailyOrdersRow `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected 1 day, got %+v", resp.Data)
	}
	if resp.Data[0].Date != "2017-05-03" || resp.Data[0].OrderCount != 1 || resp.Data[0].Revenue != 30 {
		t.Errorf("row = %+v, want 2017-05-03 with 1 order and revenue 30", resp.Data[0])
	}
}

func TestGetDailyOrders_DefaultsToDatasetBounds(t *testing.T) {
	r := newTestRouter()
	seedSnapshot(t)

	w := doRequest(r, "/admin/dashboard/daily-orders")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []models.DailyOrdersRow `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("without parameters the full dataset serves, got %+v", resp.Data)
	}
}

func TestGetDailyOrders_RejectsMalformedDate(t *testing.T) {
	r := newTestRouter()
	seedSnapshot(t)

	w := doRequest(r, "/admin/dashboard/daily-orders?start_date=05-03-2017")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetDailyOrders_RejectsInvertedRange(t *testing.T) {
	r := newTestRouter()
	seedSnapshot(t)

	w := doRequest(r, "/admin/dashboard/daily-orders?start_date=2017-05-04&end_date=2017-05-03")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp models.ApiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Error {
		t.Error("expected error envelope")
	}
}

func TestGetOverview_HappyPath(t *testing.T) {
	r := newTestRouter()
	seedSnapshot(t)

	w := doRequest(r, "/admin/dashboard/overview")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data models.DashboardOverview `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Data.TotalOrders != 3 || resp.Data.TotalRevenue != 75 {
		t.Errorf("overview = %+v, want 3 orders and revenue 75", resp.Data)
	}
	if resp.Data.TopState != "SP" {
		t.Errorf("top state = %s, want SP", resp.Data.TopState)
	}
	if resp.Data.MostCommonScore != 5 {
		t.Errorf("most common score = %d, want 5", resp.Data.MostCommonScore)
	}
}

func TestGetOverview_EmptyRangeIs404(t *testing.T) {
	r := newTestRouter()
	seedSnapshot(t)

	w := doRequest(r, "/admin/dashboard/overview?start_date=2019-01-01&end_date=2019-12-31")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
