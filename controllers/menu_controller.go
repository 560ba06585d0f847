package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"naoh-aquatics/config"
	"naoh-aquatics/libs"
	"naoh-aquatics/models"
	"naoh-aquatics/repositories"
	"naoh-aquatics/services"
	"naoh-aquatics/utils"
)

type MenuController struct {
	menuService *services.MenuService
}

func NewMenuController() *MenuController {
	return &MenuController{menuService: services.NewMenuService()}
}

func menuCacheKey(filter repositories.MenuFilter) string {
	return fmt.Sprintf("menu_list_p%d_l%d_c%s_s%s_pop%t",
		filter.Page, filter.Limit, filter.Category, filter.Search, filter.PopularOnly)
}

func invalidateMenuCache() {
	if config.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := config.RedisClient.Scan(ctx, 0, "menu_list_*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}

// GetCategories godoc
// @Summary Get all categories
// @Description Get active categories in navigation order
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *MenuController) GetCategories(c *gin.Context) {
	categories, err := ctrl.menuService.GetCategories(c.Request.Context())
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to retrieve categories", Error: err.Error()})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Categories retrieved", Data: categories})
}

// GetMenu godoc
// @Summary Get menu items
// @Description Get paginated menu items with variations and add-ons
// @Tags Catalog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param category query string false "Filter by category id"
// @Param search query string false "Search by item name"
// @Param popular query bool false "Popular items only"
// @Success 200 {object} models.PaginationResponse
// @Router /menu [get]
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	popular, _ := strconv.ParseBool(c.DefaultQuery("popular", "false"))

	filter := repositories.MenuFilter{
		Category:    c.Query("category"),
		Search:      c.Query("search"),
		PopularOnly: popular,
		Page:        page,
		Limit:       limit,
	}

	cacheKey := menuCacheKey(filter)
	ctx := c.Request.Context()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	response, err := ctrl.menuService.GetMenu(ctx, filter)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to retrieve menu", Error: err.Error()})
		return
	}

	if config.RedisClient != nil {
		if jsonData, err := json.Marshal(response); err == nil {
			config.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(200, response)
}

// GetMenuItem godoc
// @Summary Get one menu item
// @Description Get a menu item by id with variations and add-ons
// @Tags Catalog
// @Produce json
// @Param id path string true "Menu item id"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /menu/{id} [get]
func (ctrl *MenuController) GetMenuItem(c *gin.Context) {
	item, err := ctrl.menuService.GetMenuItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "Menu item not found"})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Menu item retrieved", Data: item})
}

// CreateMenuItem godoc
// @Summary Create menu item
// @Description Create a menu item with variations and add-ons (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/menu [post]
func (ctrl *MenuController) CreateMenuItem(c *gin.Context) {
	var req models.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	item, err := ctrl.menuService.CreateMenuItem(c.Request.Context(), req)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Failed to create menu item", Error: err.Error()})
		return
	}

	invalidateMenuCache()
	c.JSON(201, models.Response{Success: true, Message: "Menu item created", Data: item})
}

// UpdateMenuItem godoc
// @Summary Update menu item
// @Description Update a menu item; variations and add-ons are replaced when provided (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Menu item id"
// @Param request body models.UpdateMenuItemRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/menu/{id} [patch]
func (ctrl *MenuController) UpdateMenuItem(c *gin.Context) {
	var req models.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	item, err := ctrl.menuService.UpdateMenuItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Failed to update menu item", Error: err.Error()})
		return
	}

	invalidateMenuCache()
	c.JSON(200, models.Response{Success: true, Message: "Menu item updated", Data: item})
}

// DeleteMenuItem godoc
// @Summary Delete menu item
// @Description Mark a menu item unavailable (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Produce json
// @Param id path string true "Menu item id"
// @Success 200 {object} models.Response
// @Router /admin/menu/{id} [delete]
func (ctrl *MenuController) DeleteMenuItem(c *gin.Context) {
	if err := ctrl.menuService.DeleteMenuItem(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to delete menu item", Error: err.Error()})
		return
	}

	invalidateMenuCache()
	c.JSON(200, models.Response{Success: true, Message: "Menu item deleted"})
}

// UploadItemImage godoc
// @Summary Upload menu item image
// @Description Upload an image; stored on Cloudinary when configured, local disk otherwise (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/menu/image [post]
func (ctrl *MenuController) UploadItemImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Image file required"})
		return
	}

	relPath, err := utils.UploadFile(c, fileHeader, "menu")
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Upload failed", Error: err.Error()})
		return
	}

	imageURL := "/uploads/" + filepath.ToSlash(relPath)
	if libs.CloudinaryConfigured() {
		localPath := filepath.Join(config.AppConfig.UploadDir, relPath)
		url, err := libs.UploadToCloudinary(localPath, "menu")
		if err != nil {
			c.JSON(500, models.ErrorResponse{Success: false, Message: "Cloudinary upload failed", Error: err.Error()})
			return
		}
		imageURL = url
	}

	c.JSON(200, models.Response{Success: true, Message: "Image uploaded", Data: gin.H{"image_url": imageURL}})
}

// CreateCategory godoc
// @Summary Create category
// @Tags Admin - Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CategoryRequest true "Category"
// @Success 201 {object} models.Response
// @Router /admin/categories [post]
func (ctrl *MenuController) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	cat, err := ctrl.menuService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Failed to create category", Error: err.Error()})
		return
	}

	invalidateMenuCache()
	c.JSON(201, models.Response{Success: true, Message: "Category created", Data: cat})
}

// UpdateCategory godoc
// @Summary Update category
// @Tags Admin - Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category id"
// @Param request body models.CategoryRequest true "Category"
// @Success 200 {object} models.Response
// @Router /admin/categories/{id} [patch]
func (ctrl *MenuController) UpdateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	cat, err := ctrl.menuService.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Failed to update category", Error: err.Error()})
		return
	}

	invalidateMenuCache()
	c.JSON(200, models.Response{Success: true, Message: "Category updated", Data: cat})
}

// DeleteCategory godoc
// @Summary Delete category
// @Tags Admin - Catalog
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} models.Response
// @Router /admin/categories/{id} [delete]
func (ctrl *MenuController) DeleteCategory(c *gin.Context) {
	if err := ctrl.menuService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to delete category", Error: err.Error()})
		return
	}

	invalidateMenuCache()
	c.JSON(200, models.Response{Success: true, Message: "Category deleted"})
}
