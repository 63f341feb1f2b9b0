package i18n

var translations = map[Language]map[string]string{
	LangDE: de,
	LangEN: en,
}

var de = map[string]string{
	// Project type selection
	"projectType.title":         "Datenschutzportal für Forschungsvorhaben",
	"projectType.question":      "Was möchten Sie tun?",
	"projectType.new":           "Neues Projekt einreichen",
	"projectType.new.desc":      "Reichen Sie Datenschutzunterlagen für ein neues Forschungsprojekt ein",
	"projectType.existing":      "Eingereichtes Projekt bearbeiten",
	"projectType.existing.desc": "Laden Sie zusätzliche Dokumente für ein bereits eingereichtes Projekt hoch",
	"projectType.info":          "Hinweis: Für eingereichte Projekte benötigen Sie Ihre Projekt-ID oder den ursprünglichen Projekttitel zur Identifikation.",

	// New-project form
	"form.title":             "Datenschutzportal für Forschungsvorhaben",
	"form.baseData":          "Basisdaten",
	"form.email":             "E-Mail-Adresse",
	"form.uploaderName":      "Name des Einreichenden (optional)",
	"form.projectTitle":      "Projekttitel (Kurztitel)",
	"form.projectDetails":    "Projektdetails (optional)",
	"form.prospectiveStudy":  "Prospektive Studie / Prospektiver Anteil",
	"form.documents":         "Dokumente hochladen",
	"form.required":          "*",
	"form.back":              "Zurück zur Auswahl",
	"form.legalConfirmation": "Ich bestätige die rechtskonforme Nutzung der Daten",

	// Existing-project form
	"existingProject.title":          "Eingereichtes Projekt bearbeiten",
	"existingProject.back":           "Zurück zur Auswahl",
	"existingProject.projectDetails": "Projektdetails:",

	// Categories
	"category.datenschutzkonzept":    "Datenschutzkonzept",
	"category.verantwortung":         "Verpflichtung zur rechtskonformen Datennutzung",
	"category.schulung_uni":          "Schulungsnachweis Universität",
	"category.schulung_ukf":          "Schulungsnachweis UKF",
	"category.einwilligung":          "Einwilligungsformular(e)/PatInfo(s)",
	"category.ethikvotum":            "Ethikvotum",
	"category.sonstiges":             "Sonstiges",
	"category.nachzureichende_daten": "Nachzureichende Unterlagen",

	// Validation / transport errors
	"error.title":               "Bitte beheben Sie folgende Fehler:",
	"error.emailRequired":       "E-Mail-Adresse ist erforderlich",
	"error.emailInvalid":        "Bitte geben Sie eine gültige E-Mail-Adresse ein",
	"error.titleRequired":       "Projekttitel ist erforderlich",
	"error.categoryRequired":    "ist ein Pflichtfeld",
	"error.legalRequired":       "Bitte bestätigen Sie die rechtskonforme Nutzung der Daten.",
	"error.uploadFailed":        "Ein Fehler ist beim Upload aufgetreten. Bitte versuchen Sie es erneut.",
	"error.uploadNotSuccessful": "Upload wurde nicht erfolgreich abgeschlossen.",
	"error.network":             "Verbindungsfehler: Die Verbindung zum Server konnte nicht hergestellt werden. Bitte überprüfen Sie Ihre Internetverbindung.",
	"error.authFailed":          "Authentifizierung fehlgeschlagen. Bitte überprüfen Sie das API-Token.",
	"error.configMissingToken":  "Konfigurationsfehler: API Token fehlt. Bitte kontaktieren Sie den Administrator.",
	"error.configMissingApiUrl": "Konfigurationsfehler: API URL fehlt. Bitte kontaktieren Sie den Administrator.",

	// Upload phases
	"upload.phase.preparing":       "Vorbereitung",
	"upload.phase.preparing.desc":  "Dateien werden vorbereitet...",
	"upload.phase.validating":      "Validierung",
	"upload.phase.validating.desc": "Dateien werden auf Gültigkeit geprüft...",
	"upload.phase.connecting":      "Verbindung wird hergestellt",
	"upload.phase.connecting.desc": "Verbindung zur next.Hessencloud wird hergestellt...",
	"upload.phase.uploading":       "Dateien werden hochgeladen",
	"upload.phase.uploading.desc":  "{count} Datei(en) werden hochgeladen...",
	"upload.phase.processing":      "Verarbeitung",
	"upload.phase.processing.desc": "Metadaten werden erstellt...",
	"upload.phase.email":           "E-Mail wird versendet",
	"upload.phase.email.desc":      "Bestätigungs-E-Mail wird versendet...",
	"upload.phase.completing":      "Abschluss",
	"upload.phase.completing.desc": "Upload wird abgeschlossen...",
	"upload.phase.done":            "Abgeschlossen",
	"upload.phase.done.desc":       "Alle Dokumente wurden erfolgreich hochgeladen.",

	// Submit area
	"submit.filesReady":   "bereit zum Upload",
	"submit.noFiles":      "Keine Dateien ausgewählt",
	"submit.uploading":    "Wird hochgeladen...",
	"submit.button":       "Formular absenden und Dokumente hochladen",
	"submit.confirmation": "Mit dem Absenden bestätigen Sie die Richtigkeit Ihrer Angaben",
	"submit.file":         "Datei",
	"submit.files":        "Dateien",

	// Confirmation screen
	"confirmation.success":      "Upload erfolgreich abgeschlossen!",
	"confirmation.message":      "Ihre Dokumente wurden erfolgreich hochgeladen und in der next.Hessencloud gespeichert. Eine Bestätigungs-E-Mail wurde an Ihre E-Mail-Adresse versendet.",
	"confirmation.details":      "Upload-Details",
	"confirmation.projectTitle": "Projekttitel",
	"confirmation.email":        "E-Mail-Adresse",
	"confirmation.timestamp":    "Upload-Zeitpunkt",
	"confirmation.emailSent":    "Eine Bestätigungs-E-Mail wurde an {email} gesendet mit allen Details zu Ihrem Upload.",
	"confirmation.newUpload":    "Weiteren Upload durchführen",
}

var en = map[string]string{
	// Project type selection
	"projectType.title":         "Data Protection Portal",
	"projectType.question":      "What would you like to do?",
	"projectType.new":           "Submit New Project",
	"projectType.new.desc":      "Submit data protection documents for a new research project",
	"projectType.existing":      "Edit Existing Project",
	"projectType.existing.desc": "Upload additional documents for an existing project",
	"projectType.info":          "Note: For existing projects, you need your project ID or the original project title for identification.",

	// New-project form
	"form.title":             "Data Protection Portal",
	"form.baseData":          "Basic Data",
	"form.email":             "Email Address",
	"form.uploaderName":      "Uploader Name (optional)",
	"form.projectTitle":      "Project Title (Short Title)",
	"form.projectDetails":    "Project Details (optional)",
	"form.prospectiveStudy":  "Prospective Study / Prospective Component",
	"form.documents":         "Upload Documents",
	"form.required":          "*",
	"form.back":              "Back to Selection",
	"form.legalConfirmation": "I confirm the legally compliant use of the data",

	// Existing-project form
	"existingProject.title":          "Edit Existing Project",
	"existingProject.back":           "Back to Selection",
	"existingProject.projectDetails": "Project details:",

	// Categories
	"category.datenschutzkonzept":    "Data Protection Concept",
	"category.verantwortung":         "Data Use Responsibility Statement",
	"category.schulung_uni":          "University Training Certificate",
	"category.schulung_ukf":          "UKF Training Certificate",
	"category.einwilligung":          "Consent Form(s)/PatInfo(s)",
	"category.ethikvotum":            "Ethics Approval",
	"category.sonstiges":             "Other",
	"category.nachzureichende_daten": "Documents to be submitted later",

	// Validation / transport errors
	"error.title":               "Please fix the following errors:",
	"error.emailRequired":       "Email address is required",
	"error.emailInvalid":        "Please enter a valid email address",
	"error.titleRequired":       "Project title is required",
	"error.categoryRequired":    "is a required field",
	"error.legalRequired":       "Please confirm the legally compliant use of the data.",
	"error.uploadFailed":        "An error occurred during upload. Please try again.",
	"error.uploadNotSuccessful": "Upload was not completed successfully.",
	"error.network":             "Connection error: Unable to reach the server. Please check your internet connection.",
	"error.authFailed":          "Authentication failed. Please check the API token.",
	"error.configMissingToken":  "Configuration error: API token is missing. Please contact the administrator.",
	"error.configMissingApiUrl": "Configuration error: API URL is missing. Please contact the administrator.",

	// Upload phases
	"upload.phase.preparing":       "Preparing",
	"upload.phase.preparing.desc":  "Files are being prepared...",
	"upload.phase.validating":      "Validating",
	"upload.phase.validating.desc": "Files are being validated...",
	"upload.phase.connecting":      "Connecting",
	"upload.phase.connecting.desc": "Connecting to next.Hessencloud...",
	"upload.phase.uploading":       "Uploading files",
	"upload.phase.uploading.desc":  "Uploading {count} file(s)...",
	"upload.phase.processing":      "Processing",
	"upload.phase.processing.desc": "Creating metadata...",
	"upload.phase.email":           "Sending email",
	"upload.phase.email.desc":      "Sending confirmation email...",
	"upload.phase.completing":      "Completing",
	"upload.phase.completing.desc": "Completing upload...",
	"upload.phase.done":            "Done",
	"upload.phase.done.desc":       "All documents have been successfully uploaded.",

	// Submit area
	"submit.filesReady":   "ready for upload",
	"submit.noFiles":      "No files selected",
	"submit.uploading":    "Uploading...",
	"submit.button":       "Submit Form and Upload Documents",
	"submit.confirmation": "By submitting you confirm the accuracy of your information",
	"submit.file":         "file",
	"submit.files":        "files",

	// Confirmation screen
	"confirmation.success":      "Upload Completed Successfully!",
	"confirmation.message":      "Your documents have been successfully uploaded and stored in next.Hessencloud. A confirmation email has been sent to your email address.",
	"confirmation.details":      "Upload Details",
	"confirmation.projectTitle": "Project Title",
	"confirmation.email":        "Email Address",
	"confirmation.timestamp":    "Upload Time",
	"confirmation.emailSent":    "A confirmation email was sent to {email} with all details about your upload.",
	"confirmation.newUpload":    "Perform Another Upload",
}
