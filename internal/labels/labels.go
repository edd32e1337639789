// Package labels maps internal enum codes to the Arabic strings shown in
// the employee console and on the website. Every resolver is an exhaustive
// switch over its closed tag set; an unknown code returns ("", false) and
// callers render blank rather than failing.
package labels

func BookingStatus(code string) (string, bool) {
	switch code {
	case "pending":
		return "معلق", true
	case "confirmed":
		return "مؤكد", true
	case "completed":
		return "مكتمل", true
	case "cancelled":
		return "ملغي", true
	case "rescheduled":
		return "معاد جدولته", true
	}
	return "", false
}

func InterviewType(code string) (string, bool) {
	switch code {
	case "eye-examination":
		return "فحص العيون", true
	case "contact-lens-fitting":
		return "تركيب العدسات اللاصقة", true
	case "sunglasses-consultation":
		return "استشارة النظارات الشمسية", true
	case "other":
		return "أخرى", true
	}
	return "", false
}

func BookingSource(code string) (string, bool) {
	switch code {
	case "website":
		return "الموقع الإلكتروني", true
	case "phone":
		return "هاتف", true
	case "walk-in":
		return "زيارة مباشرة", true
	case "employee":
		return "موظف", true
	}
	return "", false
}

func ExpenseCategory(code string) (string, bool) {
	switch code {
	case "office_supplies":
		return "مستلزمات مكتبية", true
	case "transportation":
		return "مواصلات", true
	case "meals":
		return "وجبات", true
	case "equipment":
		return "معدات", true
	case "maintenance":
		return "صيانة", true
	case "utilities":
		return "مرافق", true
	case "marketing":
		return "تسويق", true
	case "training":
		return "تدريب", true
	case "other":
		return "أخرى", true
	}
	return "", false
}

func ExpenseStatus(code string) (string, bool) {
	switch code {
	case "pending":
		return "معلق", true
	case "approved":
		return "موافق عليه", true
	case "rejected":
		return "مرفوض", true
	}
	return "", false
}

func ProductCategory(code string) (string, bool) {
	switch code {
	case "sunglasses":
		return "النظارات الشمسية", true
	case "eyeglasses":
		return "النظارات الطبية", true
	case "lenses":
		return "العدسات اللاصقة", true
	}
	return "", false
}
