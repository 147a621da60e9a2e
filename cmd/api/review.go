package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"reviewapi/internal/domain/reviews"
	"reviewapi/internal/domain/storage"
	"reviewapi/internal/store"
)

// reviewDateLayout is day-month-year hour:minute:second, e.g. 01-01-2021 00:00:00.
const reviewDateLayout = "02-01-2006 15:04:05"

// now is swapped out by tests.
var now = func() time.Time { return time.Now().UTC() }

type createReviewPayload struct {
	Product  *int64   `json:"product" validate:"required"`
	Rating   *float64 `json:"rating" validate:"required"`
	Feedback *string  `json:"feedback" validate:"required"`
	Date     *string  `json:"date,omitempty"` // optional, defaults to now (UTC)
}

// reviewDate falls back to the current UTC time only when no date was sent.
// A date that is present but malformed is an error.
func (p createReviewPayload) reviewDate() (time.Time, error) {
	if p.Date == nil {
		return now(), nil
	}
	t, err := time.ParseInLocation(reviewDateLayout, *p.Date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must use the format DD-MM-YYYY HH:MM:SS, got %q", *p.Date)
	}
	return t, nil
}

type totalReviewsResponse struct {
	TotalReviews int64 `json:"total_reviews"`
}

type productReviewsResponse struct {
	Reviews []reviews.Review `json:"reviews"`
}

// createReviewHandler godoc
//
//	@Summary		Add review
//	@Description	Stores a rating and feedback for a product. date is optional (DD-MM-YYYY HH:MM:SS, UTC).
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		createReviewPayload	true	"Review"
//	@Success		201		{object}	messageResponse
//	@Failure		400		{object}	error
//	@Failure		409		{object}	error	"Product does not exist"
//	@Failure		500		{object}	error
//	@Router			/api/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	var payload createReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, validationError(err))
		return
	}

	date, err := payload.reviewDate()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review := reviews.Review{
		ProductID: *payload.Product,
		Rating:    *payload.Rating,
		Date:      date,
		Feedback:  *payload.Feedback,
	}

	ctx := r.Context()
	err = app.store.WithTx(ctx, func(tx *storage.Tx) error {
		if err := ensureSchema(ctx, tx); err != nil {
			return err
		}
		return tx.Reviews.Create(ctx, review)
	})
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "Your review was successfully submitted"})
}

// totalReviewsHandler godoc
//
//	@Summary		Total reviews
//	@Description	Number of reviews across all products.
//	@Tags			reviews
//	@Produce		json
//	@Success		200	{object}	totalReviewsResponse
//	@Failure		500	{object}	error
//	@Router			/api/total-reviews [get]
func (app *application) totalReviewsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var total int64
	err := app.store.WithTx(ctx, func(tx *storage.Tx) error {
		var err error
		total, err = tx.Reviews.CountAll(ctx)
		return err
	})
	if err != nil && !errors.Is(err, store.ErrNoSchema) {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, totalReviewsResponse{TotalReviews: total})
}

// getProductReviewsHandler godoc
//
//	@Summary		List reviews for a product
//	@Tags			reviews
//	@Produce		json
//	@Param			productID	path		int	true	"Product ID"
//	@Success		200			{object}	productReviewsResponse
//	@Failure		500			{object}	error
//	@Router			/api/reviews/{productID} [get]
func (app *application) getProductReviewsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()
	list := []reviews.Review{}
	err = app.store.WithTx(ctx, func(tx *storage.Tx) error {
		found, err := tx.Reviews.ListForProduct(ctx, id)
		if err != nil {
			return err
		}
		list = found
		return nil
	})
	if err != nil && !errors.Is(err, store.ErrNoSchema) {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, productReviewsResponse{Reviews: list})
}
