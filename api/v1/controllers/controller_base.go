package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	apierrors "github.com/zosjobs/jobs-gateway/api/errors"
	"github.com/zosjobs/jobs-gateway/models/common"
	"github.com/zosjobs/jobs-gateway/utils"
)

type Route struct {
	Path    string
	Method  string
	Handler gin.HandlerFunc
}

type Controller interface {
	GetRoutes() []Route
}

type ControllerBase struct {
}

// HandleError Writes the status of a classified error, other errors are reported as unknown
func (controller *ControllerBase) HandleError(c *gin.Context, err error) {
	_ = c.Error(err)

	var status *common.Status
	switch t := err.(type) {
	case apierrors.APIStatus:
		status = t.Status()
	default:
		status = apierrors.NewFromError(err).Status()
	}

	log.Ctx(c.Request.Context()).Warn().Err(err).Msgf("request failed with code %d", status.Code)
	utils.StatusResponse(c.Writer, status)
}

// SuccessResponse Writes a success status with the message
func (controller *ControllerBase) SuccessResponse(c *gin.Context, code int, message string) {
	utils.StatusResponse(c.Writer, &common.Status{
		Status:  common.StatusSuccess,
		Code:    code,
		Message: message,
	})
}
