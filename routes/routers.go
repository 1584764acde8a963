package routes

import (
	"context"
	"net/http"

	"propman/config"
	"propman/constants"
	"propman/controllers"
	middlewares "propman/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	userController := controllers.NewUserController(db, redisCli, m)
	bookingController := controllers.NewBookingController(db, redisCli, m)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)

	v1.GET("/profile", userController.GetProfile)
	v1.PUT("/profile", userController.UpdateProfile)
	v1.PUT("/password", userController.ChangePassword)

	v1.GET("/members/pending", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleStaff), userController.GetPendingMembers)
	v1.PUT("/members/:id/approve", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleStaff), userController.ApproveMember)
	v1.PUT("/members/:id/reject", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleStaff), userController.RejectMember)

	v1.GET("/notifications", userController.GetNotifications)
	v1.PUT("/notifications/:id/read", userController.MarkNotificationRead)
	v1.POST("/notifyAll", middlewares.AuthMiddleware(constants.RoleAdmin), userController.NotifyAll)
	v1.POST("/notify/:userID", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleStaff), userController.NotifyUser)

	v1.GET("/properties", controllers.GetProperties)
	v1.POST("/properties", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleStaff, constants.RoleOwner), controllers.CreateProperty)
	v1.GET("/properties/:id", controllers.GetPropertyDetail)
	v1.PUT("/propertyUpdate", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleStaff, constants.RoleOwner), controllers.UpdateProperty)
	v1.DELETE("/properties/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteProperty)

	v1.POST("/renewContract", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleStaff, constants.RoleOwner), controllers.RenewContract)
	v1.POST("/cancelContract", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleStaff, constants.RoleOwner), controllers.CancelContract)
	v1.GET("/properties/:id/contractStats", controllers.GetContractStats)

	v1.POST("/checkin", bookingController.CheckIn)
	v1.POST("/checkout", bookingController.CheckOut)
	v1.POST("/cancelBooking", bookingController.CancelBooking)
	v1.GET("/calendar", controllers.GetCalendar)

	v1.POST("/payments", controllers.CreatePayment)
	v1.PUT("/paymentProof", controllers.UploadPaymentProof)
	v1.PUT("/verifyPayment", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleStaff, constants.RoleOwner), controllers.VerifyPayment)
	v1.GET("/properties/:id/payments", controllers.GetPaymentHistory)

	v1.POST("/inspections", controllers.CreateInspection)
	v1.GET("/properties/:id/inspections", controllers.GetInspections)
	v1.PUT("/quoteRepair", controllers.QuoteRepair)
	v1.PUT("/confirmRepair", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleStaff, constants.RoleOwner), controllers.ConfirmRepair)
	v1.DELETE("/inspections", controllers.DeleteInspection)

	v1.POST("/expenses", controllers.CreateExpense)
	v1.GET("/properties/:id/expenses", controllers.GetExpenses)

	v1.POST("/search/ai", controllers.SearchPropertiesAI)
	v1.GET("/search", controllers.SearchProperties)
	v1.DELETE("/search/filters", controllers.ResetSearchFilters)
	v1.POST("/receipt/scan", controllers.ScanReceipt)

	v1.GET("/dashboard/summary", controllers.GetDashboardSummary)
	v1.GET("/dashboard/insight", controllers.GetPortfolioInsight)

	v1.POST("/img/multi-upload", func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "receipts"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"url":     resp.SecureURL,
		})
	})

	//ws
	v1.GET("/test-broadcast", middlewares.AuthMiddleware(constants.RoleAdmin), func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})

}
