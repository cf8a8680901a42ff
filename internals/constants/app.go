package constants

const (
	// Header porteur du passcode admin (portail partenaires)
	AdminPassHeader = "X-Admin-Pass"

	// Préfixes objet OSS de la médiathèque
	MediaDir      = "media"
	MediaThumbDir = "media/thumbs"
)
