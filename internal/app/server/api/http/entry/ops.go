package entry

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) path() string {
	return "/api/" + h.kind.Collection()
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: h.kind.Collection() + "-list",
		Method:      http.MethodGet,
		Path:        h.path(),
		Summary:     "List " + h.kind.Collection(),
		Description: "Returns the whole collection in insertion order.",
		Tags:        []string{h.kind.Collection()},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   h.kind.Collection() + "-create",
		Method:        http.MethodPost,
		Path:          h.path(),
		Summary:       "Create " + h.kind.String(),
		Description:   "Amount, " + h.kind.CodeField() + " and date are required. The id is assigned by the server.",
		Tags:          []string{h.kind.Collection()},
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusBadRequest},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: h.kind.Collection() + "-update",
		Method:      http.MethodPut,
		Path:        h.path() + "/{id}",
		Summary:     "Update " + h.kind.String(),
		Description: "Partial update: only supplied fields change.",
		Tags:        []string{h.kind.Collection()},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: h.kind.Collection() + "-delete",
		Method:      http.MethodDelete,
		Path:        h.path() + "/{id}",
		Summary:     "Delete " + h.kind.String(),
		Tags:        []string{h.kind.Collection()},
		Errors:      []int{http.StatusNotFound},
		Middlewares: h.middleware,
	}
}
