package tool

// Static demo catalog. The tables are read-only after init; tools only look
// things up and render summaries.

// Order is one row of the demo order book.
type Order struct {
	Customer         string
	CustomerEmail    string
	Product          string
	ProductID        string
	Price            float64
	OrderDate        string
	DeliveryDate     string
	Status           string
	Warranty         string
	WarrantyExpires  string
	PurchaseLocation string
}

var orders = map[string]Order{
	"12345": {
		Customer:         "Sarah Miller",
		CustomerEmail:    "sarah.miller@email.com",
		Product:          "TechBook Pro 15",
		ProductID:        "TB-PRO-15",
		Price:            1299.99,
		OrderDate:        "2024-01-28",
		DeliveryDate:     "2024-01-30",
		Status:           "delivered",
		Warranty:         "2 years",
		WarrantyExpires:  "2026-01-30",
		PurchaseLocation: "online",
	},
	"12346": {
		Customer:         "John Davis",
		CustomerEmail:    "john.davis@email.com",
		Product:          "TechBook Air 13",
		ProductID:        "TB-AIR-13",
		Price:            899.99,
		OrderDate:        "2024-02-15",
		DeliveryDate:     "2024-02-18",
		Status:           "delivered",
		Warranty:         "1 year",
		WarrantyExpires:  "2025-02-18",
		PurchaseLocation: "online",
	},
	"12347": {
		Customer:         "Emily Wilson",
		CustomerEmail:    "emily.wilson@email.com",
		Product:          "TechBook Gaming 17",
		ProductID:        "TB-GAME-17",
		Price:            1899.99,
		OrderDate:        "2024-03-01",
		DeliveryDate:     "2024-03-05",
		Status:           "shipped",
		Warranty:         "3 years",
		WarrantyExpires:  "2027-03-05",
		PurchaseLocation: "store",
	},
}

// Product is one row of the demo product catalog.
type Product struct {
	ID             string
	Name           string
	RAM            string
	Storage        string
	Processor      string
	Graphics       string
	Display        string
	Battery        string
	Weight         string
	Price          float64
	Inventory      int
	Rating         float64
	Category       string
	WarrantyPeriod string
}

var products = map[string]Product{
	"TB-PRO-15": {
		ID: "TB-PRO-15", Name: "TechBook Pro 15",
		RAM: "16GB DDR4", Storage: "512GB SSD", Processor: "Intel i7-12700H",
		Graphics: "Intel Iris Xe", Display: "15.6\" 1920x1080 IPS",
		Battery: "8 hours", Weight: "3.5 lbs",
		Price: 1299.99, Inventory: 45, Rating: 4.5,
		Category: "professional", WarrantyPeriod: "2 years",
	},
	"TB-AIR-13": {
		ID: "TB-AIR-13", Name: "TechBook Air 13",
		RAM: "8GB DDR4", Storage: "256GB SSD", Processor: "Intel i5-1235U",
		Graphics: "Intel Iris Xe", Display: "13.3\" 1920x1080 IPS",
		Battery: "12 hours", Weight: "2.8 lbs",
		Price: 899.99, Inventory: 122, Rating: 4.3,
		Category: "ultrabook", WarrantyPeriod: "1 year",
	},
	"TB-GAME-17": {
		ID: "TB-GAME-17", Name: "TechBook Gaming 17",
		RAM: "32GB DDR4", Storage: "1TB SSD", Processor: "Intel i9-12900H",
		Graphics: "NVIDIA RTX 4060", Display: "17.3\" 2560x1440 165Hz",
		Battery: "4 hours", Weight: "5.2 lbs",
		Price: 1899.99, Inventory: 23, Rating: 4.7,
		Category: "gaming", WarrantyPeriod: "3 years",
	},
	"TB-BASIC-14": {
		ID: "TB-BASIC-14", Name: "TechBook Basic 14",
		RAM: "8GB DDR4", Storage: "256GB SSD", Processor: "Intel i3-1215U",
		Graphics: "Intel UHD", Display: "14\" 1366x768 TN",
		Battery: "10 hours", Weight: "3.1 lbs",
		Price: 599.99, Inventory: 87, Rating: 3.9,
		Category: "budget", WarrantyPeriod: "1 year",
	},
}

var knowledgeBase = map[string][]string{
	"laptop_wont_turn_on": {
		"Check if the power adapter is properly connected to both the laptop and wall outlet",
		"Try holding the power button for 10-15 seconds to perform a hard reset",
		"Remove the battery (if removable) and reinsert it firmly",
		"Check for LED indicators on the power adapter and laptop",
		"Try a different power outlet",
		"If still not working, the power adapter or internal components may need service",
	},
	"laptop_overheating": {
		"Ensure all air vents are clear of dust and debris",
		"Use compressed air to clean vents and fan areas",
		"Check that the laptop is on a hard, flat surface for proper airflow",
		"Close unnecessary programs to reduce CPU load",
		"Consider using a laptop cooling pad",
		"Check Task Manager for high CPU usage applications",
	},
	"slow_performance": {
		"Restart the laptop to clear temporary files and processes",
		"Check available storage space - ensure at least 15% free space",
		"Run disk cleanup to remove temporary files",
		"Check for malware using Windows Defender or antivirus software",
		"Update device drivers and operating system",
		"Consider upgrading RAM if usage consistently exceeds 80%",
	},
	"wifi_issues": {
		"Restart your router and modem",
		"Forget and reconnect to the WiFi network",
		"Update WiFi adapter drivers",
		"Run Windows Network Troubleshooter",
		"Check if other devices can connect to the same network",
		"Reset network settings if other steps don't work",
	},
	"screen_issues": {
		"Check display brightness settings",
		"Try connecting an external monitor to isolate the issue",
		"Update display drivers",
		"Check cable connections if using external monitor",
		"Restart in safe mode to test display functionality",
		"If built-in display has physical damage, professional repair needed",
	},
}

var generalSteps = []string{
	"Restart the device and try again",
	"Check all cable connections",
	"Update device drivers and software",
	"Contact technical support if issue persists",
}

var policies = map[string][]string{
	"return": {
		"Returns are accepted within 30 days of delivery",
		"Items must be in original condition with all accessories",
		"A 15% restocking fee applies unless the item is defective, wrong, or damaged in shipping",
		"Contact customer service for a return authorization number before shipping the item back",
	},
	"warranty": {
		"All warranties cover manufacturing defects and hardware failures",
		"2-year and 3-year plans additionally cover screen defects; 3-year plans cover accidental damage",
		"Water damage, user-caused physical damage, and software issues are excluded",
		"Verify warranty status with the order number before arranging repair or replacement",
	},
	"exchange": {
		"Exchanges are accepted within 15 days for size, performance, or compatibility reasons",
		"A $50.00 exchange fee applies and the price difference is charged or refunded",
		"Exchanges are limited to products in the same category",
	},
}
