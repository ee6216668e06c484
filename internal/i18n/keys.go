package i18n

// Key 翻译键，闭合枚举
type Key string

const (
	// 导航
	KeyHome     Key = "home"
	KeyTenants  Key = "tenants"
	KeyPayments Key = "payments"
	KeyBills    Key = "bills"
	KeyRooms    Key = "rooms"
	KeyReports  Key = "reports"
	KeySettings Key = "settings"

	// 仪表盘
	KeyDashboard      Key = "dashboard"
	KeyWelcomeBack    Key = "welcomeBack"
	KeyOverview       Key = "overview"
	KeyTotalTenants   Key = "totalTenants"
	KeyOccupiedRooms  Key = "occupiedRooms"
	KeyPendingRents   Key = "pendingRents"
	KeyPendingBills   Key = "pendingBills"
	KeyMonthlyRevenue Key = "monthlyRevenue"
	KeyQuickActions   Key = "quickActions"
	KeyAddTenant      Key = "addTenant"
	KeyAddPayment     Key = "addPayment"
	KeyAddBill        Key = "addBill"
	KeyRecentActivity Key = "recentActivity"
	KeyViewAll        Key = "viewAll"

	// 租客
	KeySearchTenants Key = "searchTenants"
	KeyAll           Key = "all"
	KeyPaid          Key = "paid"
	KeyPending       Key = "pending"
	KeyLeft          Key = "left"
	KeyActive        Key = "active"

	// 表单
	KeyFullName        Key = "fullName"
	KeyPhoneNumber     Key = "phoneNumber"
	KeyRoomNumber      Key = "roomNumber"
	KeyMonthlyRent     Key = "monthlyRent"
	KeySecurityDeposit Key = "securityDeposit"
	KeyStartDate       Key = "startDate"
	KeyEndDate         Key = "endDate"
	KeyStatus          Key = "status"
	KeySave            Key = "save"
	KeyCancel          Key = "cancel"

	// 登录
	KeyLogin    Key = "login"
	KeySignup   Key = "signup"
	KeyEmail    Key = "email"
	KeyPassword Key = "password"
	KeyLogout   Key = "logout"

	// 设置
	KeyProfile        Key = "profile"
	KeyEditProfile    Key = "editProfile"
	KeyChangePassword Key = "changePassword"
	KeyDarkMode       Key = "darkMode"
	KeyLanguage       Key = "language"
	KeyNotifications  Key = "notifications"
)

// AllKeys 全部翻译键，英文词典必须全部覆盖
var AllKeys = []Key{
	KeyHome,
	KeyTenants,
	KeyPayments,
	KeyBills,
	KeyRooms,
	KeyReports,
	KeySettings,
	KeyDashboard,
	KeyWelcomeBack,
	KeyOverview,
	KeyTotalTenants,
	KeyOccupiedRooms,
	KeyPendingRents,
	KeyPendingBills,
	KeyMonthlyRevenue,
	KeyQuickActions,
	KeyAddTenant,
	KeyAddPayment,
	KeyAddBill,
	KeyRecentActivity,
	KeyViewAll,
	KeySearchTenants,
	KeyAll,
	KeyPaid,
	KeyPending,
	KeyLeft,
	KeyActive,
	KeyFullName,
	KeyPhoneNumber,
	KeyRoomNumber,
	KeyMonthlyRent,
	KeySecurityDeposit,
	KeyStartDate,
	KeyEndDate,
	KeyStatus,
	KeySave,
	KeyCancel,
	KeyLogin,
	KeySignup,
	KeyEmail,
	KeyPassword,
	KeyLogout,
	KeyProfile,
	KeyEditProfile,
	KeyChangePassword,
	KeyDarkMode,
	KeyLanguage,
	KeyNotifications,
}
