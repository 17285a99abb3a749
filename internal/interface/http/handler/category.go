package handler

import (
	"github.com/gin-gonic/gin"

	appcategory "github.com/xiebiao/bookcatalog/internal/application/category"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// CategoryHandler 分类HTTP处理器
type CategoryHandler struct {
	useCases *appcategory.CategoryUseCases
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(useCases *appcategory.CategoryUseCases) *CategoryHandler {
	return &CategoryHandler{useCases: useCases}
}

// CreateCategory 创建分类
// @Summary      创建分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCategoryRequest true "分类信息"
// @Success      201 {object} response.Response{data=category.CategoryResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "分类名称已存在"
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.useCases.Create(c.Request.Context(), appcategory.CategoryRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetCategory 查询分类详情
// @Summary      分类详情
// @Tags         分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response{data=category.CategoryResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.useCases.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListCategories 查询分类列表
// @Summary      分类列表
// @Tags         分类
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Param        search query string false "搜索名称"
// @Param        ordering query string false "排序字段" example("name")
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var req dto.ListCategoriesRequest
	if err := bindQuery(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.useCases.List(c.Request.Context(), appcategory.ListCategoriesRequest{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
		Ordering: req.Ordering,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.Items, result.Total, result.Page, result.PageSize)
}

// UpdateCategory 全量更新分类(PUT)
// @Summary      更新分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Param        request body dto.CreateCategoryRequest true "分类信息"
// @Success      200 {object} response.Response{data=category.CategoryResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.useCases.Update(c.Request.Context(), id, appcategory.CategoryPatchRequest{
		Name:        &req.Name,
		Description: &req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// PatchCategory 部分更新分类(PATCH)
// @Summary      部分更新分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Param        request body dto.UpdateCategoryRequest true "待更新字段"
// @Success      200 {object} response.Response{data=category.CategoryResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/categories/{id} [patch]
func (h *CategoryHandler) PatchCategory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.useCases.Update(c.Request.Context(), id, appcategory.CategoryPatchRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteCategory 删除分类
// @Summary      删除分类
// @Description  分类下仍有图书时禁止删除
// @Tags         分类
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      204 "删除成功"
// @Failure      404 {object} response.Response "分类不存在"
// @Failure      409 {object} response.Response "分类下仍有图书"
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.useCases.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
