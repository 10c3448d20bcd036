package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// TenantHeader carries the tenant on every request. There is no auth layer
// in front of this service yet; the gateway injects the header.
const TenantHeader = "X-Tenant-ID"

func tenantID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(TenantHeader))
}
