package action

import "github.com/gin-gonic/gin"

type IHandler interface {
	OpenAction(c *gin.Context)
	GetSession(c *gin.Context)
	Dismiss(c *gin.Context)
	UpdateAmount(c *gin.Context)
	ToggleCollateral(c *gin.Context)
	SyncEligibility(c *gin.Context)
	Preview(c *gin.Context)
	Submit(c *gin.Context)
	ListEvents(c *gin.Context)
}
