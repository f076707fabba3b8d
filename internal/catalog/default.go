package catalog

// Default returns the product's fixed task table.
func Default() *Catalog {
	return New(defaultTasks)
}

var defaultTasks = []Task{
	// Esencial (auto-included, summary only)
	{
		ID:       "hosting-setup",
		Name:     "Configuración de hosting, dominio e instalación de WordPress",
		Price:    40000,
		Hours:    4,
		Category: CategoryEssential,
		Mode:     ModeSummaryOnly,
	},
	{
		ID:       "design-customization",
		Name:     "Personalización del diseño (encabezado, pie de página, colores y fuentes)",
		Price:    50000,
		Hours:    6,
		Category: CategoryEssential,
		Mode:     ModeSummaryOnly,
	},
	{
		ID:       "testing",
		Name:     "Testing",
		Price:    162000,
		Hours:    24,
		Category: CategoryEssential,
		Mode:     ModeSummaryOnly,
	},

	// Principal
	{
		ID:              "three-section-page",
		Name:            "Página de 3 secciones",
		Description:     "Desarrollo de una unidad individual (por ej. Quiénes somos) dentro de un sitio web compuesta por hasta tres bloques de contenido.",
		Price:           80000,
		Hours:           8,
		Category:        CategoryMain,
		Mode:            ModeQuantity,
		DefaultQuantity: 1,
	},
	{
		ID:          "additional-section",
		Name:        "Sección adicional",
		Description: "Bloque de contenido que forma parte de una página. Por ej. contenido informativo de texto con iconos o imágenes.",
		Price:       30000,
		Hours:       3,
		Category:    CategoryMain,
		Mode:        ModeQuantity,
	},
	{
		ID:       "mail-config",
		Name:     "Configuración de mail",
		Price:    60000,
		Hours:    8,
		Category: CategoryMain,
		Mode:     ModeToggle,
	},
	{
		ID:          "additional-mailbox",
		Name:        "Casilla de mail adicional",
		Description: "Creación y puesta en funcionamiento de una cuenta de correo extra asociada al dominio, independiente de la principal.",
		Price:       6000,
		Hours:       1,
		Category:    CategoryMain,
		Mode:        ModeQuantity,
		VisibleWhen: []string{"mail-config"},
	},
	{
		ID:          "simple-contact-form",
		Name:        "Formulario de contacto simple",
		Description: "Campos básicos, sin lógica condicional ni cálculos, orientado a la recepción de mensajes estándar. Por ej. nombre, mail, mensaje.",
		Price:       64000,
		Hours:       8,
		Category:    CategoryMain,
		Mode:        ModeToggle,
	},
	{
		ID:          "additional-simple-form",
		Name:        "Formulario de contacto simple adicional (Distintos campos)",
		Description: "Formulario adicional, sin lógica condicional ni cálculos, con campos diferentes al formulario simple principal.",
		Price:       24000,
		Hours:       3,
		Category:    CategoryMain,
		Mode:        ModeQuantity,
		VisibleWhen: []string{"simple-contact-form"},
	},
	{
		ID:          "complex-form",
		Name:        "Formulario complejo",
		Description: "Campos con lógica avanzada, validaciones y/o cálculos. Por ej. subida de archivos, selección de provincias, búsqueda.",
		Price:       160000,
		Hours:       18,
		Category:    CategoryMain,
		Mode:        ModeToggle,
	},
	{
		ID:          "additional-complex-form",
		Name:        "Formulario complejo adicional (Distintos campos)",
		Description: "Formulario avanzado adicional que incorpora lógica, validaciones o cálculos, utilizando un conjunto de campos distinto al formulario complejo principal.",
		Price:       128000,
		Hours:       16,
		Category:    CategoryMain,
		Mode:        ModeQuantity,
		VisibleWhen: []string{"complex-form"},
	},
	{
		ID:          "seo-performance",
		Name:        "Optimización para motores de búsqueda y rendimiento",
		Description: "Mejoras para velocidad de carga, posicionamiento en buscadores y accesibilidad del sitio.",
		Price:       140000,
		Hours:       16,
		Category:    CategoryMain,
		Mode:        ModeToggle,
	},

	// Contenido
	{
		ID:          "blog",
		Name:        "Blog",
		Description: "Área del sitio destinada a la publicación de artículos o entradas.",
		Price:       144000,
		Hours:       18,
		Category:    CategoryContent,
		Mode:        ModeQuantity,
	},
	{
		ID:          "image-gallery",
		Name:        "Galería de imágenes",
		Description: "Bloque visual para mostrar múltiples imágenes organizadas en grilla, carrusel o vista ampliada.",
		Price:       29000,
		Hours:       3,
		Category:    CategoryContent,
		Mode:        ModeQuantity,
	},
	{
		ID:          "copywriting",
		Name:        "Redacción de texto por sección",
		Description: "Textos redactados manualmente a partir de investigación, usando IA para corrección y pulido.",
		Price:       10000,
		Hours:       1,
		Category:    CategoryContent,
		Mode:        ModeQuantity,
	},
	{
		ID:          "image-creation",
		Name:        "Creación de imagen o compra de imagen stock",
		Description: "Generación de imágenes propias o selección de imágenes de stock. Incluye edición.",
		Price:       40000,
		Hours:       4,
		Category:    CategoryContent,
		Mode:        ModeQuantity,
	},
	{
		ID:          "image-editing",
		Name:        "Edición de imagen",
		Description: "Puede incluir ajustes visuales, limpieza de imperfecciones y redimensionado.",
		Price:       7000,
		Hours:       1,
		Category:    CategoryContent,
		Mode:        ModeQuantity,
	},
	{
		ID:          "logo",
		Name:        "Creación de logo",
		Description: "Diseño simple de logo con versión a color, positivo y negativo. No incluye manual de marca.",
		Price:       256000,
		Hours:       32,
		Category:    CategoryContent,
		Mode:        ModeQuantity,
	},

	// Funcionalidades
	{
		ID:          "google-analytics",
		Name:        "Integración con Google Analytics",
		Description: "Vinculación con herramientas de medición para obtener datos de visitas y comportamiento de usuario.",
		Price:       44000,
		Hours:       5,
		Category:    CategoryFeatures,
		Mode:        ModeToggle,
	},
	{
		ID:          "user-roles",
		Name:        "Sistema de roles y permisos de usuario por persona",
		Description: "Definición de accesos y permisos según el tipo de usuario dentro del sitio.",
		Price:       62000,
		Hours:       8,
		Category:    CategoryFeatures,
		Mode:        ModeToggle,
	},
	{
		ID:          "simplified-panel",
		Name:        "Panel simplificado de edición y subida de archivos",
		Description: "Configuración de una interfaz clara para que el cliente pueda editar contenidos o subir archivos sin conocimientos técnicos.",
		Price:       296000,
		Hours:       32,
		Category:    CategoryFeatures,
		Mode:        ModeToggle,
	},
	{
		ID:          "downloadable-files",
		Name:        "Implementación de archivos descargables",
		Description: "Configuración de archivos para descarga directa desde el sitio con acceso controlado.",
		Price:       64000,
		Hours:       8,
		Category:    CategoryFeatures,
		Mode:        ModeToggle,
	},
	{
		ID:          "payment-system",
		Name:        "Sistema de pagos",
		Description: "Integración de pasarela de pago con métodos como Mercado Pago y tarjetas.",
		Price:       216000,
		Hours:       24,
		Category:    CategoryFeatures,
		Mode:        ModeToggle,
	},
	{
		ID:          "discount-system",
		Name:        "Sistema de descuentos",
		Description: "Configuración de cupones y reglas de descuento.",
		Price:       40000,
		Hours:       3,
		Category:    CategoryFeatures,
		Mode:        ModeToggle,
		VisibleWhen: []string{"payment-system"},
	},
	{
		ID:                    "basic-store",
		Name:                  "Tienda online básica",
		Description:           "Tienda con estructura simple para mostrar y vender productos, con catálogo reducido y botón de consulta por WhatsApp. No incluye sistema de pago.",
		Price:                 234000,
		Hours:                 26,
		Category:              CategoryFeatures,
		Mode:                  ModeToggle,
		MutuallyExclusiveWith: "complete-store",
	},
	{
		ID:                    "complete-store",
		Name:                  "Tienda online completa",
		Description:           "Implementación integral de e-commerce que incluye productos, categorías, envíos, impuestos, checkout, emails y pasarela de pago.",
		Price:                 698000,
		Hours:                 96,
		Category:              CategoryFeatures,
		Mode:                  ModeToggle,
		MutuallyExclusiveWith: "basic-store",
	},
	{
		ID:          "product-load",
		Name:        "Carga de productos",
		Description: "Incorporación de productos a la tienda con datos básicos. No incluye imagen ni descripción.",
		Price:       3000,
		Hours:       0.2,
		Category:    CategoryFeatures,
		Mode:        ModeQuantity,
		VisibleWhen: []string{"basic-store", "complete-store"},
	},

	// Soporte y seguridad
	{
		ID:          "security",
		Name:        "Configuración completa de seguridad",
		Description: "Implementación de medidas de seguridad como firewall, captcha, filtros y protección contra ataques.",
		Price:       350000,
		Hours:       36,
		Category:    CategorySupport,
		Mode:        ModeToggle,
	},
	{
		ID:          "privacy-cookies",
		Name:        "Política de privacidad / Cookies",
		Description: "Implementación de aviso de cookies con gestión de consentimiento.",
		Price:       30000,
		Hours:       3,
		Category:    CategorySupport,
		Mode:        ModeToggle,
	},
	{
		ID:          "online-training",
		Name:        "Capacitación por hora online",
		Description: "Sesión de formación para aprender a usar y administrar el sitio web por videollamada.",
		Price:       22000,
		Hours:       1,
		Category:    CategorySupport,
		Mode:        ModeQuantity,
	},
	{
		ID:          "onsite-training",
		Name:        "Capacitación por hora presencial",
		Description: "Sesión de formación para aprender a usar y administrar el sitio web de forma presencial.",
		Price:       25000,
		Hours:       1,
		Category:    CategorySupport,
		Mode:        ModeQuantity,
	},
	{
		ID:          "user-manual",
		Name:        "Documentación: Manual de uso",
		Description: "Entrega de manual mediante sitio web y/o PDF con instrucciones claras para gestionar el sitio.",
		Price:       120000,
		Hours:       12,
		Category:    CategorySupport,
		Mode:        ModeToggle,
	},
	{
		ID:          "video-tutorial",
		Name:        "Video tutorial por tema",
		Description: "Video explicativo sobre un tema específico, con duración máxima de 10 minutos.",
		Price:       120000,
		Hours:       12,
		Category:    CategorySupport,
		Mode:        ModeQuantity,
	},
	{
		ID:          "monthly-maintenance",
		Name:        "Mantenimiento básico mensual",
		Description: "Servicio recurrente con pago mensual independiente que incluye actualizaciones, revisiones de seguridad y copias de respaldo.",
		Price:       10000,
		Hours:       1,
		Category:    CategorySupport,
		Mode:        ModeToggle,
	},

	// Incluido gratis
	{ID: "essential-plugins", Name: "Plugins esenciales", Hours: 1, Category: CategoryFreeIncluded, Mode: ModeSummaryOnly},
	{ID: "responsive", Name: "Implementación responsive", Hours: 12, Category: CategoryFreeIncluded, Mode: ModeSummaryOnly},
	{ID: "favicon", Name: "Favicon", Hours: 1, Category: CategoryFreeIncluded, Mode: ModeSummaryOnly},
	{ID: "social-integration", Name: "Integración redes sociales", Hours: 1, Category: CategoryFreeIncluded, Mode: ModeSummaryOnly},
	{ID: "support", Name: "Soporte dentro de plazo de trabajo", Hours: 0, Category: CategoryFreeIncluded, Mode: ModeSummaryOnly},
}
