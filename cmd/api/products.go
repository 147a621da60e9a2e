package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"reviewapi/internal/domain/products"
	"reviewapi/internal/domain/schema"
	"reviewapi/internal/domain/storage"
	"reviewapi/internal/store"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templateFS embed.FS

var productsPage = template.Must(template.ParseFS(templateFS, "templates/products.html"))

type productPayload struct {
	Name *string `json:"name" validate:"required"`
}

type createProductResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ensureSchema re-asserts both tables before a write, under the schema lock.
// products goes first because reviews references it.
func ensureSchema(ctx context.Context, tx *storage.Tx) error {
	if err := tx.Schema.Lock(ctx); err != nil {
		return err
	}
	for _, table := range []string{schema.Products, schema.Reviews} {
		if err := tx.Schema.Ensure(ctx, table); err != nil {
			return err
		}
	}
	return nil
}

func parseProductID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		return 0, errors.New("invalid product ID")
	}
	return id, nil
}

// createProductHandler godoc
//
//	@Summary		Create product
//	@Description	Adds a product and returns the id assigned by the database.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		productPayload	true	"Product name"
//	@Success		201		{object}	createProductResponse
//	@Failure		400		{object}	error
//	@Failure		500		{object}	error
//	@Router			/api/products [post]
func (app *application) createProductHandler(w http.ResponseWriter, r *http.Request) {
	var payload productPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, validationError(err))
		return
	}

	ctx := r.Context()
	var id int64
	err := app.store.WithTx(ctx, func(tx *storage.Tx) error {
		if err := ensureSchema(ctx, tx); err != nil {
			return err
		}
		var err error
		id, err = tx.Products.Create(ctx, *payload.Name)
		return err
	})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createProductResponse{
		ID:      id,
		Message: fmt.Sprintf("Product: %s added to list.", *payload.Name),
	})
}

// getProductInfoHandler godoc
//
//	@Summary		Product info
//	@Description	Name, review count and average rating (null when there are no reviews).
//	@Tags			products
//	@Produce		json
//	@Param			productID	path		int	true	"Product ID"
//	@Success		200			{object}	products.Info
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Router			/api/product/{productID} [get]
func (app *application) getProductInfoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()
	var info products.Info
	err = app.store.WithTx(ctx, func(tx *storage.Tx) error {
		var err error
		if info.ProductName, err = tx.Products.GetName(ctx, id); err != nil {
			return err
		}
		if info.NumberOfReviews, err = tx.Reviews.CountForProduct(ctx, id); err != nil {
			return err
		}
		info.AverageRating, err = tx.Reviews.AverageRating(ctx, id)
		return err
	})
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// deleteProductHandler godoc
//
//	@Summary		Delete product
//	@Description	Deletes a product together with all of its reviews.
//	@Tags			products
//	@Produce		json
//	@Param			productID	path		int	true	"Product ID"
//	@Success		200			{object}	messageResponse
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Router			/api/product/{productID} [delete]
func (app *application) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()
	var name string
	err = app.store.WithTx(ctx, func(tx *storage.Tx) error {
		var err error
		if name, err = tx.Products.GetName(ctx, id); err != nil {
			return err
		}
		return tx.Products.Delete(ctx, id)
	})
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Product named %s with id: %d was deleted.", name, id),
	})
}

// renameProductHandler godoc
//
//	@Summary		Rename product
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		int				true	"Product ID"
//	@Param			payload		body		productPayload	true	"New name"
//	@Success		200			{object}	messageResponse
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Router			/api/product/{productID} [put]
func (app *application) renameProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload productPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, validationError(err))
		return
	}

	ctx := r.Context()
	var oldName string
	err = app.store.WithTx(ctx, func(tx *storage.Tx) error {
		var err error
		if oldName, err = tx.Products.GetName(ctx, id); err != nil {
			return err
		}
		return tx.Products.Rename(ctx, id, *payload.Name)
	})
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Product named %s with id: %d was renamed to %s.", oldName, id, *payload.Name),
	})
}

// listProductsHandler godoc
//
//	@Summary		List products
//	@Description	Renders every product as an HTML list.
//	@Tags			products
//	@Produce		html
//	@Success		200	{string}	string	"HTML"
//	@Failure		500	{object}	error
//	@Router			/api/products [get]
func (app *application) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var list []products.Product
	err := app.store.WithTx(ctx, func(tx *storage.Tx) error {
		var err error
		list, err = tx.Products.List(ctx)
		return err
	})
	if err != nil && !errors.Is(err, store.ErrNoSchema) {
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := productsPage.Execute(w, map[string]any{"Products": list}); err != nil {
		app.logger.Errorw("render products page", "error", err.Error())
	}
}
