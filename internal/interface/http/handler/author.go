package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/bookcatalog/internal/application/author"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	useCases *appauthor.AuthorUseCases
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(useCases *appauthor.AuthorUseCases) *AuthorHandler {
	return &AuthorHandler{useCases: useCases}
}

// CreateAuthor 创建作者
// @Summary      创建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      201 {object} response.Response{data=author.AuthorResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "邮箱已存在"
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.useCases.Create(c.Request.Context(), appauthor.AuthorRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetAuthor 查询作者详情
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=author.AuthorResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
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

// ListAuthors 查询作者列表
// @Summary      作者列表
// @Tags         作者
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Param        search query string false "搜索姓名/邮箱"
// @Param        ordering query string false "排序字段" example("last_name")
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /api/v1/authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	var req dto.ListAuthorsRequest
	if err := bindQuery(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.useCases.List(c.Request.Context(), appauthor.ListAuthorsRequest{
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

// UpdateAuthor 全量更新作者(PUT)
// @Summary      更新作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      200 {object} response.Response{data=author.AuthorResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateAuthorRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.useCases.Update(c.Request.Context(), id, appauthor.AuthorPatchRequest{
		FirstName: &req.FirstName,
		LastName:  &req.LastName,
		Email:     &req.Email,
		BirthDate: &req.BirthDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// PatchAuthor 部分更新作者(PATCH)
// @Summary      部分更新作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Param        request body dto.UpdateAuthorRequest true "待更新字段"
// @Success      200 {object} response.Response{data=author.AuthorResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [patch]
func (h *AuthorHandler) PatchAuthor(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateAuthorRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.useCases.Update(c.Request.Context(), id, appauthor.AuthorPatchRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteAuthor 删除作者
// @Summary      删除作者
// @Description  名下仍有图书的作者禁止删除
// @Tags         作者
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Success      204 "删除成功"
// @Failure      404 {object} response.Response "作者不存在"
// @Failure      409 {object} response.Response "作者名下仍有图书"
// @Router       /api/v1/authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
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
