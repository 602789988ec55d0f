package handlers

import (
	"net/http"

	"translate-api/internal/services"
)

type PackagesHandler struct {
	packageService services.PackageService
}

func NewPackagesHandler(packageService services.PackageService) *PackagesHandler {
	return &PackagesHandler{
		packageService: packageService,
	}
}

func (h *PackagesHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.packageService.ListPackages())
}
