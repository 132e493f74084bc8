package v1

import (
	"net/http"

	"github.com/gargantua-app/backend/internal/httputil"
	"github.com/gargantua-app/backend/internal/identity"
	"github.com/gargantua-app/backend/internal/models"
	"github.com/gargantua-app/backend/internal/stats"
	"github.com/gargantua-app/backend/internal/wishlist"
	"github.com/gin-gonic/gin"
)

// RegisterWishlistRoutes registers the routes for the wishlist with
// the RouterGroup that is passed.
func RegisterWishlistRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsWishlist)
		r.GET("", GetWishlistItems)
		r.POST("", CreateWishlistItems)
	}

	// Wishlist item with ID
	{
		r.OPTIONS("/:id", OptionsWishlistItemDetail)
		r.GET("/:id", GetWishlistItem)
		r.PATCH("/:id", UpdateWishlistItem)
		r.DELETE("/:id", DeleteWishlistItem)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wishlist
// @Success		204
// @Router			/v1/wishlist [options]
func OptionsWishlist(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wishlist
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wishlist/{id} [options]
func OptionsWishlistItemDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = getWishlistItemResource(c, uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get wishlist item
// @Description	Returns a specific wishlist item
// @Tags			Wishlist
// @Produce		json
// @Success		200	{object}	WishlistItemResponse
// @Failure		400	{object}	WishlistItemResponse
// @Failure		404	{object}	WishlistItemResponse
// @Failure		500	{object}	WishlistItemResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wishlist/{id} [get]
func GetWishlistItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishlistItemResponse{
			Error: &e,
		})
		return
	}

	item, err := getWishlistItemResource(c, uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishlistItemResponse{
			Error: &e,
		})
		return
	}

	data := newWishlistItem(item)
	c.JSON(http.StatusOK, WishlistItemResponse{Data: &data})
}

// @Summary		Get wishlist
// @Description	Returns the wishlist of the current user. Items are ordered by priority, necessity and creation date and carry an affordability evaluation against the current balance.
// @Tags			Wishlist
// @Produce		json
// @Success		200	{object}	WishlistListResponse
// @Failure		400	{object}	WishlistListResponse
// @Failure		500	{object}	WishlistListResponse
// @Router			/v1/wishlist [get]
// @Param			purchased	query	bool	false	"Filter by purchase state"
func GetWishlistItems(c *gin.Context) {
	user, err := identity.FromContext(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishlistListResponse{
			Error: &e,
		})
		return
	}

	var filter WishlistQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, WishlistListResponse{
			Error: &s,
		})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)
	model := filter.model()

	var items []models.WishlistItem
	err = models.DB.
		Order("wishlist_items.priority DESC, wishlist_items.necessity DESC, datetime(wishlist_items.created_at) DESC").
		Where(&models.WishlistItem{UserID: user.ID}).
		Where(&model, queryFields...).
		Find(&items).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishlistListResponse{
			Error: &e,
		})
		return
	}

	// The evaluation always runs against the full balance, not a
	// filtered subset
	transactions, err := models.UserTransactions(user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishlistListResponse{
			Error: &e,
		})
		return
	}

	balance := stats.CalculateDashboard(transactions, timeNow()).Balance

	data := make([]WishlistItem, 0)
	for _, item := range items {
		entry := newWishlistItem(item)
		evaluation := newWishlistEvaluation(wishlist.Score(item.Priority, item.Necessity, item.Cost, balance))
		entry.Evaluation = &evaluation
		data = append(data, entry)
	}

	c.JSON(http.StatusOK, WishlistListResponse{
		Data: data,
	})
}

// @Summary		Create wishlist items
// @Description	Creates wishlist items from the submitted data
// @Tags			Wishlist
// @Produce		json
// @Success		201		{object}	WishlistListResponse
// @Failure		400		{object}	WishlistListResponse
// @Failure		401		{object}	WishlistListResponse
// @Failure		500		{object}	WishlistListResponse
// @Param			items	body		[]WishlistItemEditable	true	"Wishlist items"
// @Router			/v1/wishlist [post]
func CreateWishlistItems(c *gin.Context) {
	user, err := identity.FromContext(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishlistListResponse{
			Error: &e,
		})
		return
	}

	var editables []WishlistItemEditable

	// Bind data and return error if not possible
	err = httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishlistListResponse{
			Error: &e,
		})
		return
	}

	data := make([]WishlistItem, 0)
	for _, editable := range editables {
		item := editable.model(user.ID)
		err := models.DB.Create(&item).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), WishlistListResponse{
				Error: &e,
			})
			return
		}

		entry := newWishlistItem(item)
		data = append(data, entry)
		publishInsert(user.ID, tableWishlistItems, item.ID, entry)
	}

	c.JSON(http.StatusCreated, WishlistListResponse{Data: data})
}

// @Summary		Update wishlist item
// @Description	Updates an existing wishlist item. Only values to be updated need to be specified.
// @Tags			Wishlist
// @Accept			json
// @Produce		json
// @Success		200		{object}	WishlistItemResponse
// @Failure		400		{object}	WishlistItemResponse
// @Failure		404		{object}	WishlistItemResponse
// @Failure		500		{object}	WishlistItemResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			item	body		WishlistItemEditable	true	"Wishlist item"
// @Router			/v1/wishlist/{id} [patch]
func UpdateWishlistItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishlistItemResponse{
			Error: &e,
		})
		return
	}

	item, err := getWishlistItemResource(c, uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishlistItemResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, WishlistItemEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishlistItemResponse{
			Error: &e,
		})
		return
	}

	// Bind the update for the patch
	var update WishlistItemEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishlistItemResponse{
			Error: &e,
		})
		return
	}

	// Fields that are not part of the update keep their old values
	if update.Name == "" {
		update.Name = item.Name
	}
	if update.Cost.IsZero() {
		update.Cost = item.Cost
	}
	if update.Priority == 0 {
		update.Priority = item.Priority
	}
	if update.Necessity == 0 {
		update.Necessity = item.Necessity
	}

	err = models.DB.Model(&item).Select("", updateFields...).Updates(update.model(item.UserID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishlistItemResponse{
			Error: &e,
		})
		return
	}

	data := newWishlistItem(item)
	publishUpdate(item.UserID, tableWishlistItems, item.ID, data)
	c.JSON(http.StatusOK, WishlistItemResponse{Data: &data})
}

// @Summary		Delete wishlist item
// @Description	Deletes a wishlist item
// @Tags			Wishlist
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wishlist/{id} [delete]
func DeleteWishlistItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	item, err := getWishlistItemResource(c, uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&item).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	publishDelete(item.UserID, tableWishlistItems, item.ID)
	c.JSON(http.StatusNoContent, nil)
}

// getWishlistItemResource loads the wishlist item with the ID from the
// URI, scoped to the current user.
func getWishlistItemResource(c *gin.Context, uri URIID) (models.WishlistItem, error) {
	user, err := identity.FromContext(c)
	if err != nil {
		return models.WishlistItem{}, err
	}

	var item models.WishlistItem
	err = models.DB.First(&item, "id = ? AND user_id = ?", uri.ID.UUID, user.ID).Error
	if err != nil {
		return models.WishlistItem{}, err
	}

	return item, nil
}
