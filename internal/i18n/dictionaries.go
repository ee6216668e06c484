package i18n

var english = Dictionary{
	// 导航
	KeyHome:     "Home",
	KeyTenants:  "Tenants",
	KeyPayments: "Payments",
	KeyBills:    "Bills",
	KeyRooms:    "Rooms",
	KeyReports:  "Reports",
	KeySettings: "Settings",

	// 仪表盘
	KeyDashboard:      "Dashboard",
	KeyWelcomeBack:    "Welcome Back! 👋",
	KeyOverview:       "Overview",
	KeyTotalTenants:   "Total Tenants",
	KeyOccupiedRooms:  "Occupied Rooms",
	KeyPendingRents:   "Pending Rents",
	KeyPendingBills:   "Pending Bills",
	KeyMonthlyRevenue: "Monthly Revenue",
	KeyQuickActions:   "Quick Actions",
	KeyAddTenant:      "Add Tenant",
	KeyAddPayment:     "Add Payment",
	KeyAddBill:        "Add Bill",
	KeyRecentActivity: "Recent Activity",
	KeyViewAll:        "View All",

	// 租客
	KeySearchTenants: "Search tenants or room number...",
	KeyAll:           "All",
	KeyPaid:          "Paid",
	KeyPending:       "Pending",
	KeyLeft:          "Left",
	KeyActive:        "Active",

	// 表单
	KeyFullName:        "Full Name",
	KeyPhoneNumber:     "Phone Number",
	KeyRoomNumber:      "Room Number",
	KeyMonthlyRent:     "Monthly Rent",
	KeySecurityDeposit: "Security Deposit",
	KeyStartDate:       "Start Date",
	KeyEndDate:         "End Date",
	KeyStatus:          "Status",
	KeySave:            "Save",
	KeyCancel:          "Cancel",

	// 登录
	KeyLogin:    "Login",
	KeySignup:   "Sign Up",
	KeyEmail:    "Email",
	KeyPassword: "Password",
	KeyLogout:   "Logout",

	// 设置
	KeyProfile:        "Profile",
	KeyEditProfile:    "Edit Profile",
	KeyChangePassword: "Change Password",
	KeyDarkMode:       "Dark Mode",
	KeyLanguage:       "Language",
	KeyNotifications:  "Notifications",
}

var spanish = Dictionary{
	// 导航
	KeyHome:     "Inicio",
	KeyTenants:  "Inquilinos",
	KeyPayments: "Pagos",
	KeyBills:    "Facturas",
	KeyRooms:    "Habitaciones",
	KeyReports:  "Informes",
	KeySettings: "Configuración",

	// 仪表盘
	KeyDashboard:      "Panel",
	KeyWelcomeBack:    "¡Bienvenido de nuevo! 👋",
	KeyOverview:       "Resumen",
	KeyTotalTenants:   "Total Inquilinos",
	KeyOccupiedRooms:  "Habitaciones Ocupadas",
	KeyPendingRents:   "Rentas Pendientes",
	KeyPendingBills:   "Facturas Pendientes",
	KeyMonthlyRevenue: "Ingresos Mensuales",
	KeyQuickActions:   "Acciones Rápidas",
	KeyAddTenant:      "Agregar Inquilino",
	KeyAddPayment:     "Agregar Pago",
	KeyAddBill:        "Agregar Factura",
	KeyRecentActivity: "Actividad Reciente",
	KeyViewAll:        "Ver Todo",

	// 租客
	KeySearchTenants: "Buscar inquilinos o número de habitación...",
	KeyAll:           "Todos",
	KeyPaid:          "Pagado",
	KeyPending:       "Pendiente",
	KeyLeft:          "Salió",
	KeyActive:        "Activo",

	// 表单
	KeyFullName:        "Nombre Completo",
	KeyPhoneNumber:     "Número de Teléfono",
	KeyRoomNumber:      "Número de Habitación",
	KeyMonthlyRent:     "Renta Mensual",
	KeySecurityDeposit: "Depósito de Seguridad",
	KeyStartDate:       "Fecha de Inicio",
	KeyEndDate:         "Fecha de Fin",
	KeyStatus:          "Estado",
	KeySave:            "Guardar",
	KeyCancel:          "Cancelar",

	// 登录
	KeyLogin:    "Iniciar Sesión",
	KeySignup:   "Registrarse",
	KeyEmail:    "Correo",
	KeyPassword: "Contraseña",
	KeyLogout:   "Cerrar Sesión",

	// 设置
	KeyProfile:        "Perfil",
	KeyEditProfile:    "Editar Perfil",
	KeyChangePassword: "Cambiar Contraseña",
	KeyDarkMode:       "Modo Oscuro",
	KeyLanguage:       "Idioma",
	KeyNotifications:  "Notificaciones",
}

var french = Dictionary{
	// 导航
	KeyHome:     "Accueil",
	KeyTenants:  "Locataires",
	KeyPayments: "Paiements",
	KeyBills:    "Factures",
	KeyRooms:    "Chambres",
	KeyReports:  "Rapports",
	KeySettings: "Paramètres",

	// 仪表盘
	KeyDashboard:      "Tableau de bord",
	KeyWelcomeBack:    "Bon retour! 👋",
	KeyOverview:       "Aperçu",
	KeyTotalTenants:   "Total Locataires",
	KeyOccupiedRooms:  "Chambres Occupées",
	KeyPendingRents:   "Loyers en Attente",
	KeyPendingBills:   "Factures en Attente",
	KeyMonthlyRevenue: "Revenu Mensuel",
	KeyQuickActions:   "Actions Rapides",
	KeyAddTenant:      "Ajouter Locataire",
	KeyAddPayment:     "Ajouter Paiement",
	KeyAddBill:        "Ajouter Facture",
	KeyRecentActivity: "Activité Récente",
	KeyViewAll:        "Voir Tout",

	// 租客
	KeySearchTenants: "Rechercher locataires ou numéro de chambre...",
	KeyAll:           "Tous",
	KeyPaid:          "Payé",
	KeyPending:       "En Attente",
	KeyLeft:          "Parti",
	KeyActive:        "Actif",

	// 表单
	KeyFullName:        "Nom Complet",
	KeyPhoneNumber:     "Numéro de Téléphone",
	KeyRoomNumber:      "Numéro de Chambre",
	KeyMonthlyRent:     "Loyer Mensuel",
	KeySecurityDeposit: "Dépôt de Garantie",
	KeyStartDate:       "Date de Début",
	KeyEndDate:         "Date de Fin",
	KeyStatus:          "Statut",
	KeySave:            "Enregistrer",
	KeyCancel:          "Annuler",

	// 登录
	KeyLogin:    "Connexion",
	KeySignup:   "S'inscrire",
	KeyEmail:    "Email",
	KeyPassword: "Mot de passe",
	KeyLogout:   "Déconnexion",

	// 设置
	KeyProfile:        "Profil",
	KeyEditProfile:    "Modifier le Profil",
	KeyChangePassword: "Changer le Mot de Passe",
	KeyDarkMode:       "Mode Sombre",
	KeyLanguage:       "Langue",
	KeyNotifications:  "Notifications",
}
