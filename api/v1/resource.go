package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workforce-hub/dto"
	"github.com/workforce-hub/services"
)

// UpdateFunc applies an update payload to the record id on behalf of userID
type UpdateFunc[T any, U any] func(id, userID string, patch U) (T, error)

// ResourceController exposes list/get/create/update/delete for a flat entity.
// C is the create payload and U the update payload.
type ResourceController[T any, C dto.Draft[T], U any] struct {
	service *services.ResourceService[T]
	update  UpdateFunc[T, U]
	entity  string
}

// NewResourceController creates a resource controller; update handles PUT /:id
func NewResourceController[T any, C dto.Draft[T], U any](service *services.ResourceService[T], entity string, update UpdateFunc[T, U]) *ResourceController[T, C, U] {
	return &ResourceController[T, C, U]{service: service, update: update, entity: entity}
}

// PatchUpdate routes updates through the service's coalescing Update
func PatchUpdate[T any, U dto.Patch](service *services.ResourceService[T]) UpdateFunc[T, U] {
	return func(id, userID string, patch U) (T, error) {
		return service.Update(id, userID, patch)
	}
}

// RegisterRoutes mounts the entity under path. The write handlers run after
// writeMiddleware, so reads stay open to every authenticated user.
func (r *ResourceController[T, C, U]) RegisterRoutes(router *gin.RouterGroup, path string, writeMiddleware ...gin.HandlerFunc) *gin.RouterGroup {
	group := router.Group(path)
	write := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writeMiddleware...), h)
	}

	group.GET("", r.List)
	group.GET("/:id", r.Get)
	group.POST("", write(r.Create)...)
	group.PUT("/:id", write(r.Update)...)
	group.DELETE("/:id", write(r.Delete)...)
	return group
}

func (r *ResourceController[T, C, U]) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	records, err := r.service.List(userID)
	if err != nil {
		respondError(c, err, "retrieve "+r.entity+" list")
		return
	}

	respondOK(c, records)
}

func (r *ResourceController[T, C, U]) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	record, err := r.service.Get(c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "retrieve "+r.entity)
		return
	}

	respondOK(c, record)
}

func (r *ResourceController[T, C, U]) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req C
	if !bindJSON(c, &req) {
		return
	}

	record, err := r.service.Create(userID, req)
	if err != nil {
		respondError(c, err, "create "+r.entity)
		return
	}

	respondCreated(c, record)
}

// Update merges the sent fields; omitted fields keep their stored value
func (r *ResourceController[T, C, U]) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req U
	if !bindJSON(c, &req) {
		return
	}

	record, err := r.update(c.Param("id"), userID, req)
	if err != nil {
		respondError(c, err, "update "+r.entity)
		return
	}

	respondOK(c, record)
}

func (r *ResourceController[T, C, U]) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := r.service.Delete(c.Param("id"), userID); err != nil {
		respondError(c, err, "delete "+r.entity)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Deleted successfully",
	})
}
