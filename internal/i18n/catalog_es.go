package i18n

type entry struct{ key, msg string }

// spanish maps English keys to the dashboard texts.
var spanish = []entry{
	// shared
	{"Are you sure?", "¿Estás seguro?"},
	{"You won't be able to revert this!", "¡No podrás revertir esto!"},
	{"Please complete all required fields.", "Por favor, complete todos los campos requeridos."},

	// clients
	{"Client created successfully.", "¡Creado! El cliente ha sido creado correctamente."},
	{"Client updated successfully.", "¡Actualizado! El cliente ha sido actualizado correctamente."},
	{"Client deleted.", "¡Eliminado! El cliente ha sido eliminado."},
	{"Error saving client. Please try again.", "Error al guardar cliente. Por favor, inténtalo de nuevo."},
	{"Error deleting client. Please try again.", "Error al eliminar cliente. Por favor, inténtalo de nuevo."},
	{"Error loading clients.", "Error al cargar clientes."},
	{"The name must contain at least 3 letters.", "El nombre debe contener al menos 3 letras."},
	{"The client name is required.", "El nombre del cliente es requerido."},
	{"The client name may only contain letters and spaces.", "El nombre del cliente solo puede contener letras y espacios."},
	{"The phone number must contain at least 7 digits.", "El número de teléfono debe contener al menos 7 dígitos."},
	{"The phone number is required.", "El número de teléfono es requerido."},

	// suppliers
	{"Supplier created successfully.", "Proveedor creado exitosamente"},
	{"Supplier updated successfully.", "Proveedor actualizado exitosamente"},
	{"The supplier has been deleted.", "El proveedor ha sido eliminado."},
	{"There was a problem saving the supplier.", "Hubo un problema al guardar el proveedor."},
	{"The supplier cannot be deleted because it is associated with a purchase.", "El proveedor no se puede eliminar ya que se encuentra asociado a una compra."},
	{"Error loading suppliers.", "Error al cargar proveedores"},
	{"Are you sure you want to delete supplier %s?", "¿Estás seguro de que deseas eliminar al proveedor %s?"},
	{"The supplier name is required.", "El nombre del proveedor es requerido"},
	{"The supplier name may only contain letters and spaces.", "El nombre del proveedor solo puede contener letras y espacios"},
	{"The contact is required.", "El contacto es requerido"},
	{"The contact must contain at least 7 numeric digits.", "El contacto debe contener al menos 7 dígitos numéricos"},

	// supplies
	{"Supply created successfully.", "Insumo creado exitosamente"},
	{"Supply updated successfully.", "Insumo actualizado exitosamente"},
	{"The supply has been deleted.", "El insumo ha sido eliminado."},
	{"There was a problem saving the supply.", "Hubo un problema al guardar el insumo."},
	{"There was a problem deleting the supply.", "Hubo un problema al eliminar el insumo."},
	{"Error loading supplies.", "Error al cargar insumos"},
	{"Are you sure you want to delete supply %s?", "¿Estás seguro de que deseas eliminar el insumo %s?"},
	{"The supply name is required.", "El nombre del insumo es requerido"},
	{"The supply name may only contain letters and spaces.", "El nombre del insumo solo puede contener letras y espacios"},
	{"The stock must be a whole number.", "El stock debe ser un número entero"},
	{"The stock is too large.", "El stock es demasiado grande"},

	// purchases
	{"The purchase has been created successfully.", "La compra ha sido creada correctamente."},
	{"The purchase has been updated successfully.", "La compra ha sido actualizada correctamente."},
	{"The purchase has been deleted.", "La compra ha sido eliminada."},
	{"There was a problem saving the purchase.", "Hubo un problema al guardar la compra."},
	{"There was a problem deleting the purchase.", "Hubo un problema al eliminar la compra."},
	{"Error loading purchases.", "Error al cargar compras"},
	{"Are you sure you want to delete the purchase from %s?", "¿Estás seguro de que deseas eliminar la compra de %s?"},
	{"The supplier is required.", "El proveedor es requerido"},
	{"The supplier ID must be numeric.", "El ID del proveedor debe ser numérico"},
	{"The supplier ID is too large.", "El ID del proveedor es demasiado grande"},
	{"The purchase date is required.", "La fecha de compra es requerida"},
	{"The purchase date must be YYYY-MM-DD.", "La fecha de compra debe tener el formato AAAA-MM-DD"},
	{"The status is required.", "El estado es requerido"},
	{"Add at least one line item.", "Agregue al menos un detalle"},
	{"The supply ID is required.", "El ID del insumo es requerido"},
	{"The supply ID must be numeric.", "El ID del insumo debe ser numérico"},
	{"The supply ID is too large.", "El ID del insumo es demasiado grande"},
	{"The quantity is required.", "La cantidad es requerida"},
	{"The quantity must be a whole number greater than zero.", "La cantidad debe ser un número entero mayor que cero"},
	{"The quantity is too large.", "La cantidad es demasiado grande"},
	{"The unit price is required.", "El precio unitario es requerido"},
	{"The unit price must be a decimal number.", "El precio unitario debe ser un número decimal"},

	// console
	{"Clients", "Clientes"},
	{"Suppliers", "Proveedores"},
	{"Supplies", "Insumos"},
	{"Purchases", "Compras"},
	{"ID", "ID"},
	{"Name", "Nombre"},
	{"Contact", "Contacto"},
	{"Phone", "Teléfono"},
	{"Stock", "Stock actual"},
	{"Supplier", "Proveedor"},
	{"Supplier ID", "ID del proveedor"},
	{"Purchase date", "Fecha de compra"},
	{"Status", "Estado"},
	{"Total", "Total"},
	{"Line items", "Detalles de compra"},
	{"Line ID", "ID del detalle"},
	{"Supply ID", "ID del insumo"},
	{"Quantity", "Cantidad"},
	{"Unit price", "Precio unitario"},
	{"Created at", "Creado"},
	{"Updated at", "Actualizado"},
	{"Search: %s", "Buscar: %s"},
	{"Page %d of %d", "Página %d de %d"},
	{"No records.", "No hay registros."},
	{"Loading...", "Cargando..."},
	{"New", "Nuevo"},
	{"Edit", "Editar"},
	{"Details", "Detalles"},
}
