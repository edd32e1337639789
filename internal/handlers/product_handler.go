package handlers

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ebsaroptics/optical-center-api/internal/audit"
	"github.com/ebsaroptics/optical-center-api/internal/dto"
	"github.com/ebsaroptics/optical-center-api/internal/httperr"
	"github.com/ebsaroptics/optical-center-api/internal/images"
	"github.com/ebsaroptics/optical-center-api/internal/labels"
	"github.com/ebsaroptics/optical-center-api/internal/middleware"
	"github.com/ebsaroptics/optical-center-api/internal/models"
	"github.com/ebsaroptics/optical-center-api/internal/storage"
)

// ======================================================
// HANDLER
// ======================================================

type ProductHandler struct {
	db    *gorm.DB
	store storage.ImageStore
	audit *audit.Dispatcher
}

func NewProductHandler(db *gorm.DB, store storage.ImageStore, dispatcher *audit.Dispatcher) *ProductHandler {
	return &ProductHandler{
		db:    db,
		store: store,
		audit: dispatcher,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *ProductHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if category := c.Query("category"); category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}

	if c.Query("includeInactive") != "true" {
		q = q.Where("is_active = ?", true)
	}

	if c.Query("websiteOnly") == "true" {
		q = q.Where("show_on_website = ?", true)
	}

	if c.Query("lowStockOnly") == "true" {
		q = q.Where(models.LowStockCondition)
	}

	if search := strings.ToLower(strings.TrimSpace(c.Query("search"))); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(color) LIKE ? OR LOWER(description) LIKE ?",
			like, like, like, like,
		)
	}

	q = q.Order("created_at DESC")

	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			q = q.Limit(limit)
		}
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "فشل في جلب المنتجات")
		return
	}

	c.JSON(http.StatusOK, dto.NewProductViews(products))
}

// ======================================================
// LOW STOCK
// ======================================================

func (h *ProductHandler) LowStock(c *gin.Context) {
	var products []models.Product
	if err := h.db.
		Where("is_active = ?", true).
		Where(models.LowStockCondition).
		Order("quantity ASC").
		Find(&products).Error; err != nil {

		httperr.Internal(c, "failed_to_list_products", "فشل في جلب المنتجات")
		return
	}

	c.JSON(http.StatusOK, dto.NewProductViews(products))
}

// ======================================================
// GET
// ======================================================

func (h *ProductHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "المنتج غير موجود")
		return
	}

	c.JSON(http.StatusOK, dto.NewProductView(product))
}

// ======================================================
// CREATE (multipart: fields + optional image)
// ======================================================

func (h *ProductHandler) Create(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	category := c.PostForm("category")
	brand := strings.TrimSpace(c.PostForm("brand"))
	priceStr := c.PostForm("price")
	quantityStr := c.PostForm("quantity")

	if name == "" || category == "" || brand == "" || priceStr == "" || quantityStr == "" {
		httperr.BadRequest(c, "missing_fields", "جميع الحقول مطلوبة")
		return
	}

	if _, ok := labels.ProductCategory(category); !ok {
		httperr.BadRequest(c, "invalid_category", "فئة المنتج غير صحيحة")
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price <= 0 {
		httperr.BadRequest(c, "invalid_price", "السعر يجب أن يكون أكبر من صفر")
		return
	}

	quantity, err := strconv.Atoi(quantityStr)
	if err != nil || quantity < 0 {
		httperr.BadRequest(c, "invalid_quantity", "الكمية لا يمكن أن تكون سالبة")
		return
	}

	lowStockThreshold := 10
	if v := c.PostForm("lowStockThreshold"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			lowStockThreshold = n
		}
	}

	product := models.Product{
		Name:                name,
		Category:            category,
		Brand:               brand,
		Price:               price,
		Quantity:            quantity,
		LowStockThreshold:   lowStockThreshold,
		Color:               c.PostForm("color"),
		FrameMaterial:       c.PostForm("frameMaterial"),
		LensType:            c.PostForm("lensType"),
		PrescriptionDetails: c.PostForm("prescriptionDetails"),
		Description:         c.PostForm("description"),
		IsActive:            true,
		ShowOnWebsite:       c.PostForm("showOnWebsite") == "true",
	}

	// Validate and upload the image before touching the record: an asset
	// store failure must not leave a half-saved product behind.
	if fileHeader, err := c.FormFile("image"); err == nil {
		url, ok := h.uploadImage(c, fileHeader)
		if !ok {
			return
		}
		product.Image = url
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_create_product", "فشل في إضافة المنتج")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    c.GetString(middleware.ContextUsername),
		Action:   "product_created",
		Entity:   "product",
		EntityID: &product.ID,
	})

	c.JSON(http.StatusCreated, dto.NewProductView(product))
}

// ======================================================
// UPDATE (multipart: any subset of fields + optional new image)
// ======================================================

func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "المنتج غير موجود")
		return
	}

	if v, ok := c.GetPostForm("name"); ok {
		product.Name = strings.TrimSpace(v)
	}
	if v, ok := c.GetPostForm("category"); ok {
		if _, valid := labels.ProductCategory(v); !valid {
			httperr.BadRequest(c, "invalid_category", "فئة المنتج غير صحيحة")
			return
		}
		product.Category = v
	}
	if v, ok := c.GetPostForm("brand"); ok {
		product.Brand = strings.TrimSpace(v)
	}
	if v, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price <= 0 {
			httperr.BadRequest(c, "invalid_price", "السعر يجب أن يكون أكبر من صفر")
			return
		}
		product.Price = price
	}
	if v, ok := c.GetPostForm("quantity"); ok {
		quantity, err := strconv.Atoi(v)
		if err != nil || quantity < 0 {
			httperr.BadRequest(c, "invalid_quantity", "الكمية لا يمكن أن تكون سالبة")
			return
		}
		product.Quantity = quantity
	}
	if v, ok := c.GetPostForm("lowStockThreshold"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			httperr.BadRequest(c, "invalid_threshold", "حد المخزون لا يمكن أن يكون سالباً")
			return
		}
		product.LowStockThreshold = n
	}
	if v, ok := c.GetPostForm("color"); ok {
		product.Color = v
	}
	if v, ok := c.GetPostForm("frameMaterial"); ok {
		product.FrameMaterial = v
	}
	if v, ok := c.GetPostForm("lensType"); ok {
		product.LensType = v
	}
	if v, ok := c.GetPostForm("prescriptionDetails"); ok {
		product.PrescriptionDetails = v
	}
	if v, ok := c.GetPostForm("description"); ok {
		product.Description = v
	}
	if v, ok := c.GetPostForm("isActive"); ok {
		product.IsActive = v == "true"
	}
	if v, ok := c.GetPostForm("showOnWebsite"); ok {
		product.ShowOnWebsite = v == "true"
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		oldImage := product.Image

		url, ok := h.uploadImage(c, fileHeader)
		if !ok {
			return
		}
		product.Image = url

		// Replacing succeeded; removing the old asset is best-effort.
		if key := storage.KeyFromURL(oldImage); key != "" {
			if err := h.store.Delete(c.Request.Context(), key); err != nil {
				log.Println("failed to delete old product image:", err)
			}
		}
	}

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "فشل في تحديث المنتج")
		return
	}

	c.JSON(http.StatusOK, dto.NewProductView(product))
}

// ======================================================
// SOFT DELETE
// ======================================================

func (h *ProductHandler) SoftDelete(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "المنتج غير موجود")
		return
	}

	product.IsActive = false
	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_product", "فشل في حذف المنتج")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    c.GetString(middleware.ContextUsername),
		Action:   "product_hidden",
		Entity:   "product",
		EntityID: &product.ID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "تم حذف المنتج بنجاح"})
}

// ======================================================
// IMAGE UPLOAD
// ======================================================

// uploadImage validates, normalizes and stores an uploaded photo. It writes
// the error response itself and returns ok=false when the caller should
// stop.
func (h *ProductHandler) uploadImage(c *gin.Context, fileHeader *multipart.FileHeader) (string, bool) {
	if fileHeader.Size > images.MaxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "حجم الصورة كبير جداً. الحد الأقصى 5 ميغابايت")
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "فشل في قراءة الصورة")
		return "", false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, images.MaxUploadBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "فشل في قراءة الصورة")
		return "", false
	}

	processed, contentType, err := images.Process(data)
	if err != nil {
		switch {
		case errors.Is(err, images.ErrTooLarge):
			httperr.BadRequest(c, "image_too_large", "حجم الصورة كبير جداً. الحد الأقصى 5 ميغابايت")
		case errors.Is(err, images.ErrUnsupportedType), errors.Is(err, images.ErrDecode):
			httperr.BadRequest(c, "invalid_image_type", "نوع الصورة غير مدعوم. المسموح JPEG و PNG و WebP")
		default:
			httperr.Internal(c, "failed_to_process_image", "فشل في معالجة الصورة")
		}
		return "", false
	}

	key := storage.ProductImageKeyPrefix + "product-" + uuid.NewString() + ".webp"

	url, err := h.store.Put(c.Request.Context(), key, contentType, processed)
	if err != nil {
		log.Println("image upload error:", err)
		httperr.Internal(c, "image_upload_failed", "فشل في رفع الصورة")
		return "", false
	}

	return url, true
}
