package shopfront

const (
	msgIncorrectArguments = "Incorrect arguments, try again."
	msgInvalidProduct     = "Invalid product name."
	msgInvalidQuality     = "Invalid product quality."
	msgInvalidQuantity    = "Invalid quantity."
	msgInvalidPhone       = "Invalid phone number."
	msgCustomerNotFound   = "Customer not found."
	msgDuplicateCustomer  = "Customer already exists."
	msgCustomerAdded      = "Customer added."
	msgInventoryEmpty     = "Inventory is empty."
	msgAddressBookEmpty   = "Address book is empty."
	msgTransactionStarted = "Transaction started."
	msgOutOfStock         = "Product out of stock."
	msgEmptyCheckout      = "Transaction was empty, nothing recorded."
	msgNothingSold        = "No products sold yet."
	msgNoTransactions     = "No transactions available."
)
