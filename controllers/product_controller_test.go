package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"shop-service/controllers"
	"shop-service/models"
	"shop-service/services"
)

var _ services.Product = (*stubProductService)(nil)

type stubProductService struct {
	createFn func(models.CreateProductRequest) (*models.Product, error)
	getFn    func(int) (*models.Product, error)
	updateFn func(int, models.UpdateProductRequest) (*models.Product, error)
	deleteFn func(int) error
	listFn   func(models.ProductFilter) ([]models.Product, error)
}

func (s *stubProductService) Create(req models.CreateProductRequest) (*models.Product, error) {
	return s.createFn(req)
}
func (s *stubProductService) Get(id int) (*models.Product, error) { return s.getFn(id) }
func (s *stubProductService) Update(id int, req models.UpdateProductRequest) (*models.Product, error) {
	return s.updateFn(id, req)
}
func (s *stubProductService) Delete(id int) error { return s.deleteFn(id) }
func (s *stubProductService) List(f models.ProductFilter) ([]models.Product, error) {
	return s.listFn(f)
}

func newProductRouter(svc services.Product) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controllers.SetProductService(svc)
	r := gin.New()
	r.GET("/products", controllers.ListProducts)
	r.GET("/products/filter", controllers.FilterProducts)
	r.GET("/products/:id", controllers.GetProduct)
	r.POST("/products", controllers.CreateProduct)
	r.PUT("/products/:id", controllers.UpdateProduct)
	r.DELETE("/products/:id", controllers.DeleteProduct)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, controllers.Response) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp controllers.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestProductController(t *testing.T) {
	t.Run("Create_ReturnsCreatedEnvelope", func(t *testing.T) {
		svc := &stubProductService{
			createFn: func(req models.CreateProductRequest) (*models.Product, error) {
				return &models.Product{ID: 1, Name: req.Name, Price: *req.Price}, nil
			},
		}
		r := newProductRouter(svc)

		w, resp := doRequest(t, r, http.MethodPost, "/products",
			`{"name":"Soccer Ball","description":"Match ball","price":29.99,"stock":100,"category":"Soccer"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		require.True(t, resp.Success)
		require.Equal(t, "Product created successfully.", resp.Message)
		require.NotNil(t, resp.Data)
	})

	t.Run("Create_MalformedBodyReturns400", func(t *testing.T) {
		r := newProductRouter(&stubProductService{})

		w, resp := doRequest(t, r, http.MethodPost, "/products", `{"name":"x"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.False(t, resp.Success)
		require.NotEmpty(t, resp.Errors)
	})

	t.Run("Get_MissingProductReturns404", func(t *testing.T) {
		svc := &stubProductService{
			getFn: func(int) (*models.Product, error) { return nil, models.ErrProductNotFound },
		}
		r := newProductRouter(svc)

		w, resp := doRequest(t, r, http.MethodGet, "/products/99", "")
		require.Equal(t, http.StatusNotFound, w.Code)
		require.False(t, resp.Success)
		require.Equal(t, "Product not found.", resp.Message)
	})

	t.Run("Get_NonNumericIDReturns400", func(t *testing.T) {
		r := newProductRouter(&stubProductService{})

		w, resp := doRequest(t, r, http.MethodGet, "/products/abc", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, resp.Errors, "id")
	})

	t.Run("Filter_ParsesBoundsIntoFilter", func(t *testing.T) {
		var captured models.ProductFilter
		svc := &stubProductService{
			listFn: func(f models.ProductFilter) ([]models.Product, error) {
				captured = f
				return []models.Product{{ID: 2, Name: "Tennis Racket", Price: 79.50}}, nil
			},
		}
		r := newProductRouter(svc)

		w, resp := doRequest(t, r, http.MethodGet, "/products/filter?min_price=50&max_price=100", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.True(t, resp.Success)
		require.NotNil(t, captured.MinPrice)
		require.Equal(t, 50.0, *captured.MinPrice)
		require.NotNil(t, captured.MaxPrice)
		require.Equal(t, 100.0, *captured.MaxPrice)
		require.Nil(t, captured.MinStock)
	})

	t.Run("Filter_BadNumberReturns400", func(t *testing.T) {
		r := newProductRouter(&stubProductService{})

		w, resp := doRequest(t, r, http.MethodGet, "/products/filter?min_price=cheap", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, resp.Errors, "min_price")
	})

	t.Run("Delete_ReturnsSuccessEnvelope", func(t *testing.T) {
		svc := &stubProductService{
			deleteFn: func(int) error { return nil },
		}
		r := newProductRouter(svc)

		w, resp := doRequest(t, r, http.MethodDelete, "/products/3", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.True(t, resp.Success)
		require.Equal(t, "Product deleted successfully.", resp.Message)
	})

	t.Run("List_ServiceFailureReturns500", func(t *testing.T) {
		svc := &stubProductService{
			listFn: func(models.ProductFilter) ([]models.Product, error) {
				return nil, errDatabase
			},
		}
		r := newProductRouter(svc)

		w, resp := doRequest(t, r, http.MethodGet, "/products", "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.False(t, resp.Success)
		require.Equal(t, "Failed to retrieve product list.", resp.Message)
	})
}
