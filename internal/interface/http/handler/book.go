package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createUseCase        *appbook.CreateBookUseCase
	getUseCase           *appbook.GetBookUseCase
	listUseCase          *appbook.ListBooksUseCase
	listAvailableUseCase *appbook.ListAvailableUseCase
	listByAuthorUseCase  *appbook.ListByAuthorUseCase
	updateUseCase        *appbook.UpdateBookUseCase
	deleteUseCase        *appbook.DeleteBookUseCase
	borrowUseCase        *appbook.BorrowBookUseCase
	returnUseCase        *appbook.ReturnBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createUseCase *appbook.CreateBookUseCase,
	getUseCase *appbook.GetBookUseCase,
	listUseCase *appbook.ListBooksUseCase,
	listAvailableUseCase *appbook.ListAvailableUseCase,
	listByAuthorUseCase *appbook.ListByAuthorUseCase,
	updateUseCase *appbook.UpdateBookUseCase,
	deleteUseCase *appbook.DeleteBookUseCase,
	borrowUseCase *appbook.BorrowBookUseCase,
	returnUseCase *appbook.ReturnBookUseCase,
) *BookHandler {
	return &BookHandler{
		createUseCase:        createUseCase,
		getUseCase:           getUseCase,
		listUseCase:          listUseCase,
		listAvailableUseCase: listAvailableUseCase,
		listByAuthorUseCase:  listByAuthorUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		borrowUseCase:        borrowUseCase,
		returnUseCase:        returnUseCase,
	}
}

// CreateBook 创建图书
// @Summary      创建图书
// @Description  录入新图书,需登录;ISBN不能重复,作者与分类必须已存在
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=book.BookDetail}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      409 {object} response.Response "ISBN已存在"
// @Router       /api/v1/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:           req.Title,
		ISBN:            req.ISBN,
		Description:     req.Description,
		PublicationDate: req.PublicationDate,
		Pages:           req.Pages,
		Price:           req.Price,
		AuthorID:        req.AuthorID,
		CategoryID:      req.CategoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetBook 查询图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=book.BookDetail}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListBooks 查询图书列表
// @Summary      图书列表
// @Description  分页查询,支持search(书名/简介/作者姓名)、status/author_id/category_id过滤、ordering排序
// @Tags         图书
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Param        search query string false "搜索关键词"
// @Param        status query string false "状态过滤" Enums(available, borrowed)
// @Param        author_id query int false "作者过滤"
// @Param        category_id query int false "分类过滤"
// @Param        ordering query string false "排序字段,前缀-表示降序" example("-created_at")
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var req dto.ListBooksRequest
	if err := bindQuery(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:       req.Page,
		PageSize:   req.PageSize,
		Search:     req.Search,
		Status:     req.Status,
		AuthorID:   req.AuthorID,
		CategoryID: req.CategoryID,
		Ordering:   req.Ordering,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ListAvailable 查询可借图书
// @Summary      可借图书列表
// @Description  返回全部状态为available的图书,不分页
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]book.BookListItem}
// @Router       /api/v1/books/available [get]
func (h *BookHandler) ListAvailable(c *gin.Context) {
	result, err := h.listAvailableUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListByAuthor 按作者查询图书
// @Summary      按作者查询图书
// @Tags         图书
// @Produce      json
// @Param        author_id query int true "作者ID"
// @Success      200 {object} response.Response{data=[]book.BookListItem}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/books/by_author [get]
func (h *BookHandler) ListByAuthor(c *gin.Context) {
	var req dto.ListByAuthorRequest
	if err := bindQuery(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.listByAuthorUseCase.Execute(c.Request.Context(), req.AuthorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateBook 全量更新图书(PUT)
// @Summary      更新图书
// @Description  PUT全量更新,所有字段必填
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=book.BookDetail}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      409 {object} response.Response "ISBN已存在"
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	// PUT使用与创建相同的DTO,所有字段必填
	var req dto.CreateBookRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), id, appbook.UpdateBookRequest{
		Title:           &req.Title,
		ISBN:            &req.ISBN,
		Description:     &req.Description,
		PublicationDate: &req.PublicationDate,
		Pages:           &req.Pages,
		Price:           &req.Price,
		AuthorID:        &req.AuthorID,
		CategoryID:      &req.CategoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// PatchBook 部分更新图书(PATCH)
// @Summary      部分更新图书
// @Description  PATCH部分更新,缺省字段不修改
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "待更新字段"
// @Success      200 {object} response.Response{data=book.BookDetail}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [patch]
func (h *BookHandler) PatchBook(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateBookRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), id, appbook.UpdateBookRequest{
		Title:           req.Title,
		ISBN:            req.ISBN,
		Description:     req.Description,
		PublicationDate: req.PublicationDate,
		Pages:           req.Pages,
		Price:           req.Price,
		AuthorID:        req.AuthorID,
		CategoryID:      req.CategoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  借出中的图书禁止删除
// @Tags         图书
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      204 "删除成功"
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      409 {object} response.Response "图书已借出"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// MarkAsBorrowed 借出图书
// @Summary      借出图书
// @Description  仅available状态可借出,并发借出只有一个请求成功
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=book.BookDetail}
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      409 {object} response.Response "图书当前不可借出"
// @Router       /api/v1/books/{id}/mark_as_borrowed [patch]
func (h *BookHandler) MarkAsBorrowed(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.borrowUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// MarkAsReturned 归还图书
// @Summary      归还图书
// @Description  仅borrowed状态可归还
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=book.BookDetail}
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      409 {object} response.Response "图书未被借出"
// @Router       /api/v1/books/{id}/mark_as_returned [patch]
func (h *BookHandler) MarkAsReturned(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.returnUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
