package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	MeHandler      *MeHandler
	ServiceHandler *ServiceHandler
	UploadHandler  *UploadHandler
}
