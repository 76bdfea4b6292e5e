package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"gramseva/pkg/images"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// getOrNotFound maps gorm.ErrRecordNotFound to 404 and anything else to
// 500, reporting whether the caller should continue.
func getOrNotFound(c *gin.Context, err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
	}
	return false
}

// normalizedUpload reads the multipart file and runs it through the
// image normalizer. A corrupt or unrecognized image fails the whole
// write with a 400, same as any validation error.
func normalizedUpload(c *gin.Context, file *multipart.FileHeader, spec images.Spec) (*images.Result, bool) {
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return nil, false
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return nil, false
	}
	res, err := images.Normalize(data, spec)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or unsupported image"})
		return nil, false
	}
	return res, true
}
