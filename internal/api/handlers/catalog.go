package handlers

import (
	"log"
	"net/http"
	"travel-planner-service/internal/api/dto"
	"travel-planner-service/internal/ports"
)

// DestinationHandler exposes read-only catalog retrieval endpoints.
type DestinationHandler struct {
	Catalog ports.CatalogSource
}

func (h *DestinationHandler) List(w http.ResponseWriter, r *http.Request) {
	places, err := h.Catalog.ListDestinations(r.Context())
	if err != nil {
		log.Printf("list destinations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListDestinationsResponse{
		Destinations: make([]dto.DestinationResponse, 0, len(places)),
	}
	for _, p := range places {
		res.Destinations = append(res.Destinations, dto.DestinationResponse{
			Name: p.Name,
			Lat:  p.Coords.Lat,
			Lng:  p.Coords.Lng,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
