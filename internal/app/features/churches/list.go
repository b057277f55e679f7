// internal/app/features/churches/list.go
package churches

import (
	"context"
	"net/http"
	"strconv"

	churchstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/churches"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
)

// HandleList serves the church directory, optionally narrowed by location
// and attribute filters. Public.
//
// Route: GET /api/churches
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := churchstore.Filter{
		Name:         q.Get("name"),
		City:         q.Get("city"),
		State:        q.Get("state"),
		Size:         q.Get("size"),
		AgeGroup:     q.Get("ageGroup"),
		Ethnicity:    q.Get("ethnicity"),
		Language:     q.Get("language"),
		Denomination: q.Get("denomination"),
		ServiceDay:   q.Get("serviceDay"),
	}
	if v := q.Get("volunteering"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			h.Errs.Write(w, r, apierr.BadRequest("volunteering must be true or false"))
			return
		}
		f.Volunteering = &b
	}
	if v := q.Get("participatory"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			h.Errs.Write(w, r, apierr.BadRequest("participatory must be true or false"))
			return
		}
		f.Participatory = &b
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	out, err := churchstore.New(h.DB).Search(ctx, f)
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, out)
}
