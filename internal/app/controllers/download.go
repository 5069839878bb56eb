package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/middleware"
	"github.com/yigit/gradebook/internal/pkg/export"
)

// exportFormat reads the requested export format, writing a 400 when it is
// unknown. Call it before building the report.
func exportFormat(ctx *gin.Context) (export.Format, bool) {
	var q dto.ExportQuery
	if !middleware.BindQuery(ctx, &q) {
		return "", false
	}
	format, err := export.ParseFormat(q.Format)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailure(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return "", false
	}
	return format, true
}

// sendTable renders t in format and sends it as an attachment
func sendTable(ctx *gin.Context, t export.Table, format export.Format, basename, sheet string) {
	body, err := export.Render(t, format, sheet)
	if err != nil {
		middleware.HandleAPIError(ctx, fmt.Errorf("render %s export: %w", format, err))
		return
	}
	sendFile(ctx, body, format.ContentType(), basename+"."+string(format))
}

func sendFile(ctx *gin.Context, body []byte, contentType, filename string) {
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, contentType, body)
}
