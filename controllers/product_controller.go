package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shop-service/middlewares"
	"shop-service/models"
	"shop-service/services"
)

var productService services.Product

func SetProductService(s services.Product) {
	productService = s
}

func ListProducts(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("product_list", ok)
	}()

	products, err := productService.List(models.ProductFilter{})
	if err != nil {
		respondServiceError(c, "Failed to retrieve product list.", err)
		return
	}
	respondOK(c, http.StatusOK, "Product list retrieved successfully.", products)
}

func CreateProduct(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("product_create", ok)
	}()

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, map[string]string{"body": err.Error()})
		return
	}

	product, err := productService.Create(req)
	if err != nil {
		respondServiceError(c, "Failed to create product.", err)
		return
	}
	respondOK(c, http.StatusCreated, "Product created successfully.", product)
}

func GetProduct(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("product_get", ok)
	}()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondValidation(c, map[string]string{"id": "must be an integer"})
		return
	}

	product, err := productService.Get(id)
	if err != nil {
		respondServiceError(c, "Failed to retrieve product.", err)
		return
	}
	respondOK(c, http.StatusOK, "Product retrieved successfully.", product)
}

func UpdateProduct(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("product_update", ok)
	}()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondValidation(c, map[string]string{"id": "must be an integer"})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, map[string]string{"body": err.Error()})
		return
	}

	product, err := productService.Update(id, req)
	if err != nil {
		respondServiceError(c, "Failed to update product.", err)
		return
	}
	respondOK(c, http.StatusOK, "Product updated successfully.", product)
}

func DeleteProduct(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("product_delete", ok)
	}()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondValidation(c, map[string]string{"id": "must be an integer"})
		return
	}

	if err := productService.Delete(id); err != nil {
		respondServiceError(c, "Failed to delete product.", err)
		return
	}
	respondOK(c, http.StatusOK, "Product deleted successfully.", nil)
}

func FilterProducts(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("product_filter", ok)
	}()

	filter, fieldErrs := parseProductFilter(c)
	if fieldErrs != nil {
		respondValidation(c, fieldErrs)
		return
	}

	products, err := productService.List(filter)
	if err != nil {
		respondServiceError(c, "Failed to filter products.", err)
		return
	}
	respondOK(c, http.StatusOK, "Products filtered successfully.", products)
}

func parseProductFilter(c *gin.Context) (models.ProductFilter, map[string]string) {
	filter := models.ProductFilter{
		Name:     c.Query("name"),
		Category: c.Query("category"),
	}

	for param, dst := range map[string]**float64{
		"min_price": &filter.MinPrice,
		"max_price": &filter.MaxPrice,
	} {
		if raw, ok := c.GetQuery(param); ok {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return filter, map[string]string{param: "must be a number"}
			}
			*dst = &v
		}
	}

	for param, dst := range map[string]**int{
		"min_stock": &filter.MinStock,
		"max_stock": &filter.MaxStock,
	} {
		if raw, ok := c.GetQuery(param); ok {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return filter, map[string]string{param: "must be an integer"}
			}
			*dst = &v
		}
	}

	return filter, nil
}
