package seed

type city struct {
	name    string
	pincode string
}

var cities = []city{
	{"Mumbai", "400001"},
	{"Delhi", "110001"},
	{"Bangalore", "560001"},
	{"Hyderabad", "500001"},
	{"Chennai", "600001"},
	{"Kolkata", "700001"},
	{"Pune", "411001"},
	{"Ahmedabad", "380001"},
	{"Jaipur", "302001"},
	{"Lucknow", "226001"},
}

var firstNames = []string{
	"Rahul", "Priya", "Amit", "Sneha", "Vikram", "Anjali", "Rohan", "Neha",
	"Arjun", "Pooja", "Karan", "Divya", "Sanjay", "Kavita", "Rajesh", "Meera",
	"Aditya", "Ritu", "Manish", "Simran", "Deepak", "Anita", "Suresh", "Nisha",
	"Vivek", "Preeti", "Ashok", "Sunita", "Nikhil", "Swati",
}

var lastNames = []string{
	"Sharma", "Patel", "Kumar", "Singh", "Reddy", "Gupta", "Verma", "Joshi",
	"Mehta", "Nair", "Rao", "Iyer", "Desai", "Kulkarni", "Agarwal", "Chopra",
}

// empty entries leave some customers without a business
var businessNames = []string{
	"Tech Solutions Pvt Ltd", "Global Traders", "Sunrise Enterprises",
	"Metro Logistics", "Digital Services Co", "Prime Retail Store",
	"Elite Consultancy", "Urban Fashion House", "Smart Electronics",
	"Green Organic Foods", "", "", "", "", "",
}

var streets = []string{"MG Road", "Park Street", "Main Road", "Station Road", "Market Street"}

var pickupPlaces = []string{"Sector", "Block", "Street", "Avenue"}

var deliveryPlaces = []string{"Apartment", "Building", "Complex", "Tower"}

var descriptions = []string{
	"Electronics - Laptop",
	"Documents - Legal Papers",
	"Clothing - Apparel",
	"Books - Educational Material",
	"Mobile Phone",
	"Home Appliances",
	"Gifts - Personal Items",
	"Medical Supplies",
	"Food Items - Packaged",
	"Accessories - Fashion",
}

var notes = []string{
	"Handle with care",
	"Fragile items",
	"Priority delivery",
	"Standard shipping",
	"Express delivery requested",
	"",
	"",
}
